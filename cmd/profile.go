package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/resumesmith/resumesmith/pkg/config"
	"github.com/resumesmith/resumesmith/pkg/profile"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var profileFile string

//nolint:gochecknoglobals // Cobra boilerplate
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage stored candidate profiles",
	Long: `Manage the candidate profiles used as ground truth during generation.

A profile holds your identity, employment history, and education. Generated
resumes always carry these facts verbatim, whatever the model produces.`,
}

//nolint:gochecknoglobals // Cobra boilerplate
var profileSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a profile from a JSON file",
	Long: `Save a profile from a JSON file. An existing profile of the same name is
overwritten.

Example:
  resumesmith profile save -f jane.json`,
	RunE: runProfileSave,
}

//nolint:gochecknoglobals // Cobra boilerplate
var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored profiles",
	RunE:  runProfileList,
}

//nolint:gochecknoglobals // Cobra boilerplate
var profileShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a stored profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileShow,
}

//nolint:gochecknoglobals // Cobra boilerplate
var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileDelete,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSaveCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileDeleteCmd)

	profileSaveCmd.Flags().StringVarP(&profileFile, "file", "f", "", "Path to the profile JSON file (required)")
	_ = profileSaveCmd.MarkFlagRequired("file")
}

func openStore() (store *profile.Store, err error) {
	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return store, err
	}

	store, err = profile.NewStore(cfg.ProfilesDir)
	return store, err
}

func runProfileSave(cmd *cobra.Command, args []string) (err error) {
	store, err := openStore()
	if err != nil {
		return err
	}

	var data []byte
	data, err = os.ReadFile(profileFile)
	if err != nil {
		err = errors.Wrapf(err, "failed to read profile file: %s", profileFile)
		return err
	}

	var p profile.Profile
	err = json.Unmarshal(data, &p)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse profile file: %s", profileFile)
		return err
	}

	err = store.Save(p)
	if err != nil {
		return err
	}

	fmt.Printf("Profile saved: %s\n", p.Name)
	return err
}

func runProfileList(cmd *cobra.Command, args []string) (err error) {
	store, err := openStore()
	if err != nil {
		return err
	}

	var names []string
	names, err = store.List()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		fmt.Println("No profiles stored. Add one with 'resumesmith profile save -f profile.json'.")
		return err
	}

	sort.Strings(names)
	for _, name := range names {
		fmt.Println(name)
	}

	return err
}

func runProfileShow(cmd *cobra.Command, args []string) (err error) {
	store, err := openStore()
	if err != nil {
		return err
	}

	var p profile.Profile
	p, err = store.Load(args[0])
	if err != nil {
		return err
	}

	var data []byte
	data, err = json.MarshalIndent(p, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to format profile")
		return err
	}

	fmt.Println(string(data))
	return err
}

func runProfileDelete(cmd *cobra.Command, args []string) (err error) {
	store, err := openStore()
	if err != nil {
		return err
	}

	var deleted bool
	deleted, err = store.Delete(args[0])
	if err != nil {
		return err
	}

	if !deleted {
		fmt.Printf("No profile named %q\n", args[0])
		return err
	}

	fmt.Printf("Profile deleted: %s\n", args[0])
	return err
}
