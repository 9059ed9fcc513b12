package main

func main() {
	var n int = 1
	_ = n
}
