// Package client implements the schedule, cancel and list commands of
// alarm-client.
//
// Each command loads the settings, resolves the owner (flag or
// username@hostname), calls the alarm server and prints the result.
package client
