package dims

// EnterDigit appends decimal digit d to cur. When the result would exceed
// limit the entry restarts from d alone.
func EnterDigit(d, cur, limit int) int {
	v := cur*10 + d
	if v > limit {
		return d
	}
	return v
}

// EraseDigit drops the last decimal digit of cur.
func EraseDigit(cur int) int {
	if cur < 10 {
		return 0
	}
	return cur / 10
}
