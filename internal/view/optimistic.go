package view

// Mutate runs an optimistic mutation: apply the local delta, attempt the
// remote call, and roll the delta back when the call fails. The remote error
// is returned so the caller can surface it.
func Mutate(apply func(), remote func() error, rollback func()) error {
	apply()
	if err := remote(); err != nil {
		rollback()
		return err
	}
	return nil
}
