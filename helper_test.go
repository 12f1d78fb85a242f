package fintrack

// entry is a helper for tests to create an entry with a fixed id.
func entry(id, label string, amount float64) Entry {
	return Entry{ID: id, Label: label, Amount: A(amount)}
}

// paid is a helper for tests to create a Paid entry with a fixed id.
func paid(id, label string, amount float64) Entry {
	return entry(id, label, amount).WithStatus(StatusPaid)
}

// unpaid is a helper for tests to create an Unpaid entry with a fixed id.
func unpaid(id, label string, amount float64) Entry {
	return entry(id, label, amount).WithStatus(StatusUnpaid)
}
