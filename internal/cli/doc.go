// Package cli implements the bergfex-snow command-line interface. It wires
// fetching, parsing and snapshot storage into the snow, xc and resorts
// subcommands and renders results as text or JSON.
package cli
