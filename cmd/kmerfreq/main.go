// cmd/kmerfreq/main.go
package main

import (
	"kmerfreq/internal/app"
	"kmerfreq/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
