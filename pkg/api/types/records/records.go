package records

// Ack is the acknowledgment body of a successful record insertion.
type Ack struct {
	Status string `json:"status"`
}

// StatusInserted is the status an Ack reports when a record is persisted.
const StatusInserted = "Data inserted"

func Inserted() Ack {
	return Ack{Status: StatusInserted}
}
