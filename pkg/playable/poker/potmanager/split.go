package potmanager

// Split divides amount evenly among winners
// While the amount does not divide evenly, one unit at a time is moved to leftover. Anything
// smaller than a unit that still does not divide is also moved to leftover.
func Split(amount, winners, unit int) (share int, leftover int) {
	if winners <= 0 {
		return 0, amount
	}

	if unit <= 0 {
		unit = 1
	}

	for amount%winners != 0 && amount >= unit {
		amount -= unit
		leftover += unit
	}

	if amount%winners != 0 {
		leftover += amount
		amount = 0
	}

	return amount / winners, leftover
}
