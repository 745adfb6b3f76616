// Command bookdemo builds an order book from a BookConfig and a
// hard-coded sequence of deltas, then prints its ladder and a simulated
// fill. It exists to exercise pkg/orderbook and pkg/config end to end.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/abdoElHodaky/tradsys-core/pkg/config"
	"github.com/abdoElHodaky/tradsys-core/pkg/model"
	"github.com/abdoElHodaky/tradsys-core/pkg/orderbook"
)

func main() {
	configPath := flag.String("config", "", "path to a BookConfig YAML file (optional; defaults are used if omitted)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "bookdemo:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg := config.DefaultBookConfig()
	cfg.InstrumentId = "AAPL.XNAS"
	if configPath != "" {
		loaded, err := config.LoadBookConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	bookType, err := cfg.ParsedBookType()
	if err != nil {
		return err
	}
	instrumentId, err := cfg.ParsedInstrumentId()
	if err != nil {
		return err
	}

	var opts []orderbook.Option
	if cfg.Observability.Enabled {
		logger, err := zap.NewProduction()
		if err != nil {
			return err
		}
		defer logger.Sync()
		opts = append(opts, orderbook.WithSink(orderbook.NewZapSink(logger)))
	}

	book := orderbook.New(instrumentId, bookType, opts...)

	for _, delta := range sampleDeltas(instrumentId) {
		if err := book.ApplyDelta(delta); err != nil {
			return err
		}
	}

	fmt.Print(book.Pprint(cfg.PprintLevels))

	if err := book.CheckIntegrity(); err != nil {
		return fmt.Errorf("integrity check failed: %w", err)
	}

	incoming, err := model.NewQuantity(150, 0)
	if err != nil {
		return err
	}
	fills, remaining, err := book.SimulateFills(model.OrderSideBuy, incoming, nil)
	if err != nil {
		return err
	}
	fmt.Printf("\nsimulated market buy of %s:\n", incoming.String())
	for _, f := range fills {
		fmt.Printf("  fill %s @ %s\n", f.Size.String(), f.Price.String())
	}
	fmt.Printf("  unfilled: %s\n", remaining.String())
	return nil
}

func sampleDeltas(instrumentId model.InstrumentId) []model.OrderBookDelta {
	mk := func(id uint64, side model.OrderSide, price float64, size float64) model.OrderBookDelta {
		p, _ := model.NewPrice(price, 2)
		q, _ := model.NewQuantity(size, 0)
		return model.OrderBookDelta{
			InstrumentId: instrumentId,
			Action:       model.BookActionAdd,
			Order:        model.BookOrder{Side: side, Price: p, Size: q, OrderId: id},
			Sequence:     id,
		}
	}
	return []model.OrderBookDelta{
		mk(1, model.OrderSideBuy, 99.50, 100),
		mk(2, model.OrderSideBuy, 99.25, 200),
		mk(3, model.OrderSideSell, 100.00, 120),
		mk(4, model.OrderSideSell, 100.25, 80),
	}
}
