package validate_test

func intPtr(v int) *int { return &v }
