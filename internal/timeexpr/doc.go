// Package timeexpr parses free-form time expressions into absolute instants.
//
// Supported inputs are 24-hour clock times ("14:30"), 12-hour clock times
// ("2:30 pm"), compact durations ("1h30m", "45s") and relative phrases in
// English ("in 5 minutes", "half an hour") and Portuguese ("em 10 minutos",
// "meia hora"). Clock times that already passed today roll over to tomorrow.
package timeexpr
