package process

// Output is the collected result of a process run to completion.
type Output struct {
	Status *ExitStatus
	Stdout []byte
	Stderr []byte
}
