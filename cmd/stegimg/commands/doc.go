// Package commands defines the stegimg CLI.
//
// Commands
//
//   - encode     Hide a message in an image and write a PNG
//   - decode     Recover a message from an encoded image
//   - capacity   Report how many message bytes an image can hold
//
// An empty --password writes or reads a bare message that any password opens.
package commands
