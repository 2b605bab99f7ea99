// Package main demonstrates usage of the scg-easyutils packages.
package main

import (
	"fmt"
	"strconv"

	apiError "github.com/next-trace/scg-easyutils/error"
	"github.com/next-trace/scg-easyutils/strutil"
)

func parsePort(s string) (int, error) {
	port, err := apiError.Check(strconv.Atoi(s))
	if err != nil {
		return 0, err
	}

	return port, nil
}

func main() {
	// Encoding
	fmt.Println(strutil.StringToHex("bar"))
	fmt.Println(strutil.StringURLEncode("abc def/ghi%jkl"))
	fmt.Println(strutil.BytesURLEncode([]byte("日本語")))

	// Absorb heterogeneous failures into one error type
	if _, err := parsePort("http"); err != nil {
		fmt.Println(err)
	}

	e := apiError.From(map[string]int{"retries": 3})
	fmt.Println(e.Description())
}
