package cli

// boolFlag creates a Flag that sets a bool to true when present.
func boolFlag(target *bool, long, short, desc string) Flag {
	return Flag{
		Long:        long,
		Short:       short,
		Description: desc,
		IsSet: func() bool {
			return *target
		},
		Fn: func(string) error {
			*target = true
			return nil
		},
	}
}

// stringFlag creates a Flag that stores a string value.
func stringFlag(target *string, long, short, args, desc string) Flag {
	return Flag{
		Long:        long,
		Short:       short,
		Args:        args,
		Description: desc,
		IsSet: func() bool {
			return *target != ""
		},
		Fn: func(value string) error {
			*target = value
			return nil
		},
	}
}
