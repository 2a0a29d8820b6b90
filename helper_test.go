package rebalance

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }
