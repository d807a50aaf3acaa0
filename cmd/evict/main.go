// Command evict is a file-backed issue tracker that lives inside a
// version-control working copy.
package main

func main() {
	Execute()
}
