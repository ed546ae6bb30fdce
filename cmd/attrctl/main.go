// Command attrctl is a small driver for the attribute engine: each
// subcommand builds its own in-process Subsystem and fake host object,
// runs one demonstration (create a keyval, set and read back a value,
// translate a value, tear down a map), and prints the result.
package main

func main() {
	execute()
}
