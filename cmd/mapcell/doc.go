// Package main provides the entry point for mapcell.
//
// mapcell is an interactive shell around a chained hash table: keys
// and values are text, the table grows by doubling, and every command
// maps onto one table operation.
package main
