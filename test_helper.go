package wealth

// KRW is a helper for test to create won money from const
func KRW(v float64) Money { return M(v, "KRW") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }
