// wsdlgen CLI - generates WSDL 1.1 documents for message pipelines
package main

import (
	"github.com/getmockd/wsdlgen/pkg/cli"
)

func main() {
	cli.Execute()
}
