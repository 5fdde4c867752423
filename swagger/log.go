package swagger

import "github.com/luisfurquim/goose"

// SwaggerG groups the log channels of the package. Each channel is a goose
// level: messages logged with a level above the channel value are dropped.
type SwaggerG struct {
	Loader   goose.Alert `json:"Loader"`
	Assemble goose.Alert `json:"Assemble"`
	Serve    goose.Alert `json:"Serve"`
}

// Goose is silent by default. Raise a channel to see its messages:
//
//	swagger.Goose.Loader = goose.Alert(2)
var Goose SwaggerG
