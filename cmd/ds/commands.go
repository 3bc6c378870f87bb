package ds

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	lookupCmd = &cobra.Command{
		Use:   "lookup [key]",
		Short: "Reads the value for a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if value, ok, err := dataClient.Lookup(dataset(), key); err != nil {
				return err
			} else {
				fmt.Printf("key=%s, found=%v, value=%s\n", key, ok, value)
			}
			return nil
		},
	}
	insertCmd = &cobra.Command{
		Use:   "insert [key] [value]",
		Short: "Stores the value under a key, never overwriting. With a single argument the key is generated",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := splitKeyValue(args)
			if storedKey, ok, err := dataClient.Insert(dataset(), key, []byte(value)); err != nil {
				return err
			} else {
				fmt.Printf("key=%s, inserted=%v\n", storedKey, ok)
			}
			return nil
		},
	}
	updateCmd = &cobra.Command{
		Use:   "update [key] [value]",
		Short: "Replaces the value of an existing key, never creating one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if value, ok, err := dataClient.Update(dataset(), key, []byte(args[1])); err != nil {
				return err
			} else {
				fmt.Printf("key=%s, updated=%v, value=%s\n", key, ok, value)
			}
			return nil
		},
	}
	upsertCmd = &cobra.Command{
		Use:   "upsert [key] [value]",
		Short: "Stores the value under a key unconditionally. With a single argument the key is generated",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := splitKeyValue(args)
			if storedKey, err := dataClient.Upsert(dataset(), key, []byte(value)); err != nil {
				return err
			} else {
				fmt.Printf("key=%s\n", storedKey)
			}
			return nil
		},
	}
	removeCmd = &cobra.Command{
		Use:   "remove [key]",
		Short: "Deletes a key value pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if value, ok, err := dataClient.Remove(dataset(), key); err != nil {
				return err
			} else {
				fmt.Printf("key=%s, removed=%v, value=%s\n", key, ok, value)
			}
			return nil
		},
	}
	keysCmd = &cobra.Command{
		Use:   "keys",
		Short: "Lists all keys of the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := dataClient.Keys(dataset())
			if err != nil {
				return err
			}
			fmt.Printf("count=%d\n", len(keys))
			for _, key := range keys {
				fmt.Println(key)
			}
			return nil
		},
	}
	valuesCmd = &cobra.Command{
		Use:   "values",
		Short: "Lists all values of the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := dataClient.Values(dataset())
			if err != nil {
				return err
			}
			fmt.Printf("count=%d\n", len(values))
			for _, value := range values {
				fmt.Printf("%s\n", value)
			}
			return nil
		},
	}
)

// splitKeyValue interprets a one or two element argument list. A single
// argument is a value stored under a generated key.
func splitKeyValue(args []string) (key, value string) {
	if len(args) == 1 {
		return "", args[0]
	}
	return args[0], args[1]
}
