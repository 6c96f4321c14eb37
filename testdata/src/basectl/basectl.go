package basectl

import "github.com/mpyw/apiconv/mvc"

// Base is embedded by every controller of the application.
//
//apiconv:controller
//apiconv:conventions github.com/mpyw/apiconv/mvc.Conventions
type Base struct {
	mvc.Controller
}

//apiconv:status 410
type GoneResult struct{}

//apiconv:nonaction
func (Base) Gone() GoneResult {
	return GoneResult{}
}
