// cmd/mafsummary/main.go
package main

import (
	"mafcohort/internal/appshell"
	"mafcohort/internal/summaryapp"
)

func main() {
	appshell.Main(summaryapp.RunContext)
}
