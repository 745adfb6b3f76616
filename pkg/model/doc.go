// Package model contains the canonical domain value types of the trading
// platform: interned identifiers, closed enumerations, fixed-point numeric
// primitives, and market-data records. Every type here is logically
// immutable once constructed and safe to copy and share across goroutines.
package model
