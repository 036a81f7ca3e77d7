package models

import "time"

type Operation string

const (
	OperationCreate      Operation = "create"
	OperationCount       Operation = "count"
	OperationList        Operation = "list"
	OperationGet         Operation = "get"
	OperationUpdatePrice Operation = "update_price"
	OperationDelete      Operation = "delete"
)

// Outcome describes how an operation ended.
type Outcome struct {
	Elapsed time.Duration
	Result  any
	Err     error
}

func (o Outcome) Failed() bool {
	return o.Err != nil
}

// PriceChange is the result reported for a successful price update.
type PriceChange struct {
	Book     Book
	OldPrice int
	NewPrice int
}

// Removal is the result reported for a successful delete.
type Removal struct {
	Book      Book
	Remaining int
}
