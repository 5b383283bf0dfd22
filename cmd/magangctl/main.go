// cmd/magangctl/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/garasilabs/maganghub/internal/auth"
	"github.com/garasilabs/maganghub/internal/identity"
	"github.com/garasilabs/maganghub/internal/model"
	"github.com/garasilabs/maganghub/internal/repository"
	"github.com/garasilabs/maganghub/internal/seed"
)

var (
	jwtSecret string
	verbose   bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&jwtSecret, "secret", "s", "dev-only-secret", "JWT signing secret")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	tokenCmd.Flags().String("email", "", "Email claim for the token")
	tokenCmd.Flags().String("role", string(model.RoleStudent), "Role claim for the token")
	tokenCmd.Flags().Int64("id", 1, "User id (subject) for the token")
	tokenCmd.Flags().Duration("expiry", 24*time.Hour, "Token lifetime")

	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(identityCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "magangctl",
	Short: "magangctl is a CLI companion for the MagangHub API",
	Long:  `magangctl hashes credentials, mints development tokens, and inspects the startup dataset.`,
}

var hashCmd = &cobra.Command{
	Use:   "hash [password]",
	Short: "Hash a password",
	Long:  `Hash a password with argon2id in the exact format the API stores and verifies.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		hasher := auth.NewPasswordHasher()
		encoded, err := hasher.Hash(args[0])
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		fmt.Println(encoded)
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a development JWT",
	Long:  `Mint a signed JWT carrying the given user id, email, and role claims.`,
	Run: func(cmd *cobra.Command, args []string) {
		email, _ := cmd.Flags().GetString("email")
		role, _ := cmd.Flags().GetString("role")
		id, _ := cmd.Flags().GetInt64("id")
		expiry, _ := cmd.Flags().GetDuration("expiry")

		r := model.Role(role)
		if r != model.RoleStudent && r != model.RoleCompany && r != model.RoleAdmin {
			log.Fatalf("Unknown role %q", role)
		}

		manager := auth.NewTokenManager(jwtSecret, expiry)
		token, err := manager.Generate(&model.User{ID: id, Email: email, Role: r})
		if err != nil {
			log.Fatalf("Failed to generate token: %v", err)
		}
		fmt.Println(token)
	},
}

var identityCmd = &cobra.Command{
	Use:   "identity [email] [name]",
	Short: "Encode an insecure identity token",
	Long:  `Encode a provider token the insecure development verifier accepts for external login.`,
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		name := ""
		if len(args) > 1 {
			name = args[1]
		}
		fmt.Println(identity.EncodeInsecureToken(args[0], name))
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Dump the startup dataset",
	Long:  `Load the startup dataset into fresh in-memory stores and print it as JSON.`,
	Run: func(cmd *cobra.Command, args []string) {
		stores := seed.Stores{
			Users:        repository.NewUserRepository(),
			Internships:  repository.NewInternshipRepository(),
			Applications: repository.NewApplicationRepository(),
			Reviews:      repository.NewReviewRepository(),
			Articles:     repository.NewArticleRepository(),
		}

		ctx := context.Background()
		if err := seed.Load(ctx, stores, auth.NewPasswordHasher()); err != nil {
			log.Fatalf("Failed to load seed data: %v", err)
		}

		users, _ := stores.Users.FindAll(ctx)
		internships, _ := stores.Internships.FindAll(ctx)
		applications, _ := stores.Applications.FindAll(ctx)
		reviews, _ := stores.Reviews.FindAll(ctx)
		articles, _ := stores.Articles.FindAll(ctx)

		out := map[string]any{
			"users":        users,
			"internships":  internships,
			"applications": applications,
			"reviews":      reviews,
			"articles":     articles,
		}

		enc := json.NewEncoder(os.Stdout)
		if verbose {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(out); err != nil {
			log.Fatalf("Failed to encode dataset: %v", err)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("magangctl v0.1.0")
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
