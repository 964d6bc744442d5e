package tables

func init() {
	// Every offset computed under test is checked for character boundaries
	verifyOffsets = true
}
