// cmd/mafcohort/main.go
package main

import (
	"mafcohort/internal/app"
	"mafcohort/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
