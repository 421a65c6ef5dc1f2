// Package lang provides the per-language keyword table used to locate report
// fields on bergfex page variants regardless of the page language.
//
// The table is static configuration: it is built at compile time, never
// mutated, and safe for unlimited concurrent readers. Parsers receive a
// Keywords value explicitly instead of looking languages up themselves.
package lang
