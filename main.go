package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"hotel-gestion/config"
	"hotel-gestion/repositories"
	"hotel-gestion/routes"
	"hotel-gestion/services"
	"hotel-gestion/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	var sqlitePath string
	rootCmd := &cobra.Command{
		Use:   "hotel-gestion",
		Short: "Backend de gestión hotelera",
	}
	rootCmd.PersistentFlags().StringVar(&sqlitePath, "sqlite", "", "usar un archivo sqlite en lugar de MySQL")

	settings := func() config.Settings {
		s := config.LoadSettings()
		if sqlitePath != "" {
			s.SQLitePath = sqlitePath
		}
		return s
	}

	rootCmd.AddCommand(
		serveCmd(settings),
		migrateCmd(settings),
		seedCmd(settings),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd(settings func() config.Settings) *cobra.Command {
	var migrar bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Levanta la API HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := settings()
			if s.JWTSecret == "" {
				return fmt.Errorf("JWT_SECRET environment variable is not set")
			}

			db, err := config.Open(s)
			if err != nil {
				return fmt.Errorf("database connect failed: %w", err)
			}
			if migrar {
				if err := config.Migrate(db); err != nil {
					return fmt.Errorf("migration failed: %w", err)
				}
			}
			log.Println("✅ Database connection established.")

			sesiones, err := storage.Open(s.RedisURL)
			if err != nil {
				return fmt.Errorf("redis connect failed: %w", err)
			}

			svc := services.New(repositories.New(db), sesiones, services.OpcionesDesde(s))
			router := routes.SetupRouter(s, svc)

			addr := ":" + s.Port
			srv := &http.Server{
				Addr:              addr,
				Handler:           router,
				ReadTimeout:       10 * time.Second,
				ReadHeaderTimeout: 5 * time.Second,
				WriteTimeout:      20 * time.Second,
				IdleTimeout:       60 * time.Second,
			}

			go func() {
				log.Printf("🚀 Server starting on %s", addr)
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("❌ ListenAndServe(): %v", err)
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			<-quit
			log.Println("⚠️  Shutdown signal received, shutting down server...")

			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("server forced to shutdown: %w", err)
			}
			log.Println("✅ Server stopped gracefully")
			return nil
		},
	}
	cmd.Flags().BoolVar(&migrar, "migrate", false, "aplicar migraciones antes de levantar")
	return cmd
}

func migrateCmd(settings func() config.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Crea o actualiza las tablas",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := config.Open(settings())
			if err != nil {
				return fmt.Errorf("database connect failed: %w", err)
			}
			if err := config.Migrate(db); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			log.Println("✅ Migrations applied")
			return nil
		},
	}
}

func seedCmd(settings func() config.Settings) *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Carga el usuario inicial y las habitaciones",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := config.Open(settings())
			if err != nil {
				return fmt.Errorf("database connect failed: %w", err)
			}
			if err := config.Migrate(db); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			if err := config.Seed(db, password); err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}
			log.Println("✅ Seed completed")
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", os.Getenv("ADMIN_PASSWORD"), "contraseña del usuario conserje")
	return cmd
}
