package main

import "campuslife/cmd/campuslife/root"

func main() {
	root.Execute()
}
