// Command create-librarian bootstraps a librarian account from the terminal.
//
// Usage:
//
//	create-librarian -username jdoe -email jdoe@example.com
//
// The password is read from the terminal without echo.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/libraryservice/backend/internal/auth/password"
	"github.com/libraryservice/backend/internal/config"
	"github.com/libraryservice/backend/internal/logger"
	"github.com/libraryservice/backend/internal/models"
	"github.com/libraryservice/backend/internal/repositories"
	"github.com/libraryservice/backend/internal/services"
	"go.uber.org/zap"
)

func main() {
	username := flag.String("username", "", "librarian username (prompted when empty)")
	email := flag.String("email", "", "librarian email")
	address := flag.String("address", "", "librarian address")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	reader := bufio.NewReader(os.Stdin)
	if *username == "" {
		if *username, err = readLine(reader, os.Stdout, "Username"); err != nil {
			log.Fatalf("Failed to read username: %v\n", err)
		}
	}
	pw, err := readConfirmedPassword(os.Stdout)
	if err != nil {
		log.Fatalf("Failed to read password: %v\n", err)
	}

	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	memberService := services.NewMemberService(
		repositories.NewUserRepository(db, logger.Logger),
		repositories.NewBookRepository(db, logger.Logger),
		repositories.NewBookLogRepository(db, logger.Logger),
		password.NewHasher(cfg.Security.BcryptCost),
		logger.Logger,
	)

	user, err := memberService.CreateMember(ctx, &models.SignupRequest{
		Username: *username,
		Password: pw,
		UserType: models.RoleLibrarian.String(),
		Address:  *address,
		Email:    *email,
	})
	if err != nil {
		logger.Logger.Fatal("Failed to create librarian", zap.Error(err))
	}

	fmt.Printf("Librarian %q created with id %s\n", user.Username, user.ID)
}
