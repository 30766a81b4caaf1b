package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"paytrack/internal/cli"
	"paytrack/internal/ledger"
	"paytrack/internal/model"
)

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts and their permissions",
	}

	cmd.AddCommand(usersListCmd())
	cmd.AddCommand(usersAddCmd())
	cmd.AddCommand(usersRemoveCmd())
	cmd.AddCommand(usersPermsCmd())

	return cmd
}

// permissionNames maps the CLI permission names onto the permission set.
var permissionNames = map[string]func(*model.Permissions, bool){
	"add":               func(p *model.Permissions, v bool) { p.Add = v },
	"edit":              func(p *model.Permissions, v bool) { p.Edit = v },
	"delete":            func(p *model.Permissions, v bool) { p.Delete = v },
	"change-status":     func(p *model.Permissions, v bool) { p.ChangeStatus = v },
	"manage-categories": func(p *model.Permissions, v bool) { p.ManageCategories = v },
	"manage-users":      func(p *model.Permissions, v bool) { p.ManageUsers = v },
}

func applyPermissionFlags(perms *model.Permissions, grant, revoke []string) error {
	for _, name := range grant {
		set, ok := permissionNames[name]
		if !ok {
			return fmt.Errorf("unknown permission %q", name)
		}
		set(perms, true)
	}
	for _, name := range revoke {
		set, ok := permissionNames[name]
		if !ok {
			return fmt.Errorf("unknown permission %q", name)
		}
		set(perms, false)
	}
	return nil
}

func formatPermissions(p model.Permissions) string {
	var granted []string
	for _, entry := range []struct {
		name string
		on   bool
	}{
		{"add", p.Add},
		{"edit", p.Edit},
		{"delete", p.Delete},
		{"change-status", p.ChangeStatus},
		{"manage-categories", p.ManageCategories},
		{"manage-users", p.ManageUsers},
	} {
		if entry.on {
			granted = append(granted, entry.name)
		}
	}
	if len(granted) == 0 {
		return "(none)"
	}
	return strings.Join(granted, ",")
}

// findUser resolves a username to its account.
func findUser(store *ledger.UserStore, username string) (model.User, error) {
	for _, u := range store.Users() {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, fmt.Errorf("%w: user %s", ledger.ErrNotFound, username)
}

func usersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List user accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "USERNAME\tPERMISSIONS")
			for _, u := range a.users.Users() {
				fmt.Fprintf(w, "%s\t%s\n", u.Username, formatPermissions(u.Permissions))
			}
			return w.Flush()
		},
	}
}

func usersAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <username>",
		Short: "Create a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			actor, err := a.actingUser()
			if err != nil {
				return err
			}

			password, _ := cmd.Flags().GetString("new-password")
			if password == "" {
				password, err = promptString(cli.FormatPrompt("Password for " + args[0]))
				if err != nil {
					return err
				}
			}

			var perms model.Permissions
			if all, _ := cmd.Flags().GetBool("all"); all {
				perms = model.AllPermissions()
			}
			grant, _ := cmd.Flags().GetStringSlice("grant")
			if err := applyPermissionFlags(&perms, grant, nil); err != nil {
				return err
			}

			u, err := a.users.AddUser(ledger.UserDraft{
				Username:    args[0],
				Password:    password,
				Permissions: perms,
			}, actor)
			if err != nil {
				return err
			}
			if err := a.saveUsers(ctx); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created user %s with permissions %s",
				u.Username, formatPermissions(u.Permissions))))
			return nil
		},
	}
	cmd.Flags().String("new-password", "", "password for the new account (prompted if omitted)")
	cmd.Flags().StringSlice("grant", nil, "permissions to grant (add, edit, delete, change-status, manage-categories, manage-users)")
	cmd.Flags().Bool("all", false, "grant every permission")
	return cmd
}

func usersRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <username>",
		Short: "Delete a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			actor, err := a.actingUser()
			if err != nil {
				return err
			}

			u, err := findUser(a.users, args[0])
			if err != nil {
				return err
			}

			skipConfirm, _ := cmd.Flags().GetBool("yes")
			if !skipConfirm {
				ok, err := promptYesNo(cli.FormatPrompt("Delete user " + u.Username + "?"))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.SubtleStyle.Render("Cancelled."))
					return nil
				}
			}

			if err := a.users.RemoveUser(u.ID, actor); err != nil {
				return err
			}
			if err := a.saveUsers(ctx); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Deleted user " + u.Username))
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "skip the confirmation prompt")
	return cmd
}

func usersPermsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perms <username>",
		Short: "Grant or revoke a user's permissions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			actor, err := a.actingUser()
			if err != nil {
				return err
			}

			u, err := findUser(a.users, args[0])
			if err != nil {
				return err
			}

			perms := u.Permissions
			grant, _ := cmd.Flags().GetStringSlice("grant")
			revoke, _ := cmd.Flags().GetStringSlice("revoke")
			if len(grant) == 0 && len(revoke) == 0 {
				fmt.Printf("%s: %s\n", u.Username, formatPermissions(perms))
				return nil
			}
			if err := applyPermissionFlags(&perms, grant, revoke); err != nil {
				return err
			}

			if err := a.users.UpdatePermissions(u.ID, perms, actor); err != nil {
				return err
			}
			if err := a.saveUsers(ctx); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Permissions for %s: %s",
				u.Username, formatPermissions(perms))))
			return nil
		},
	}
	cmd.Flags().StringSlice("grant", nil, "permissions to grant")
	cmd.Flags().StringSlice("revoke", nil, "permissions to revoke")
	return cmd
}
