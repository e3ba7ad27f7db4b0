package sched

import "fmt"

func schedErrorf(op string, err error) error {
	return fmt.Errorf("sched.%s: %w", op, err)
}
