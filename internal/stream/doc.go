// Package stream broadcasts simulation turns to websocket clients.
//
// Clients connect to /ws and receive one JSON TurnMessage per turn. The hub
// never reads application data from clients; the read loop only exists to
// notice when a client goes away.
package stream
