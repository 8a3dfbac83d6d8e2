// Package config decodes the optional HCL run configuration.
//
// Every attribute and block is optional; command-line flags take precedence
// over whatever the file sets.
//
//	input   = "scenario.txt"
//	output  = "result.txt"
//	workers = 4
//
//	limits {
//	  max_insects = 32
//	}
//
//	stream {
//	  port = 8090
//	}
//
//	publish {
//	  url       = "http://localhost:3000/socket.io/"
//	  namespace = "/insects"
//	  timeout   = "5s"
//	}
//
//	terminal {
//	  delay = "250ms"
//	}
package config
