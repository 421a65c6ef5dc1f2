// Package normalize converts locale-formatted numeric and date strings from
// bergfex pages into canonical values.
//
// All functions follow the same contract: they return the parsed value and
// true, or the zero value and false. Unparseable input is never an error;
// callers omit the affected field and carry on.
package normalize
