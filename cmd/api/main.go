// cmd/api/main.go
package main

func main() {
	Execute()
}
