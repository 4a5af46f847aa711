// Package `chatsrv` implements text line chat relay server.
//
// Clients connect over TCP (and optionally WebSocket), every line typed by a client
// is echoed back to its author and relayed to other clients. Lines typed on the server
// console are broadcast to everybody, `exit` stops the server.
//
// To compile chat server locally, run from package directory:
//
//	go install .
//
// Or quickly launch server with command:
//
//	go run . -address 127.0.0.1:7878
//
// Settings are read from optional YAML file (-config), .env file and environment,
// see internal/config for the list of keys.
package main
