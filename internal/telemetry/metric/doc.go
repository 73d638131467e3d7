// Package metric provides Prometheus metrics for mapcell.
//
// Shell sessions record one counter per executed operation and gauges
// for the live entry count and bucket capacity of the current map. The
// metrics live on a private registry; the shell's stats command gathers
// and renders them, so no scrape endpoint is exposed.
package metric
