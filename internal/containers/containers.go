// containers.go
//
// Drink Trail, a dashboard service for recording trails, locations and drinks
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of drink-trail.
// drink-trail is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// drink-trail is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with drink-trail.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package containers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/localnerve/drink-trail/internal/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Logf receives progress messages, t.Logf in tests
type Logf func(format string, args ...any)

// Env is the container stack configuration, read from the environment
type Env struct {
	DBType         string
	DBImage        string
	DBHost         string
	DBPort         string
	DBDatabase     string
	DBUser         string
	DBPassword     string
	DBRootPassword string

	AuthzImage       string
	AuthzPort        string
	AuthzClientID    string
	AuthzAdminSecret string
	AuthzDatabase    string

	Port         string
	BuildContext string
	Debug        bool
}

// EnvFromOS reads the stack configuration from environment variables
func EnvFromOS() Env {
	return Env{
		DBType:           getEnv("DB_TYPE", "mariadb"),
		DBImage:          os.Getenv("DB_IMAGE"),
		DBHost:           getEnv("DB_HOST", "database"),
		DBPort:           os.Getenv("DB_PORT"),
		DBDatabase:       getEnv("DB_DATABASE", "drinktrail"),
		DBUser:           getEnv("DB_USER", "drinktrail"),
		DBPassword:       getEnv("DB_PASSWORD", "drinktrail"),
		DBRootPassword:   getEnv("DB_ROOT_PASSWORD", "root"),
		AuthzImage:       os.Getenv("AUTHZ_IMAGE"),
		AuthzPort:        getEnv("AUTHZ_PORT", "9010"),
		AuthzClientID:    os.Getenv("AUTHZ_CLIENT_ID"),
		AuthzAdminSecret: os.Getenv("AUTHZ_ADMIN_SECRET"),
		AuthzDatabase:    getEnv("AUTHZ_DATABASE", "authorizer"),
		Port:             getEnv("PORT", "3000"),
		BuildContext:     getEnv("TESTCONTAINERS_BUILD_CONTEXT", "."),
		Debug:            os.Getenv("DEBUG_CONTAINER") == "true",
	}
}

// withDefaults fills the image and port of the database type
func (e Env) withDefaults() Env {
	switch e.DBType {
	case "postgres":
		if e.DBImage == "" {
			e.DBImage = "postgres:17-alpine"
		}
		if e.DBPort == "" {
			e.DBPort = "5432"
		}
	case "mysql":
		if e.DBImage == "" {
			e.DBImage = "mysql:8.4"
		}
		if e.DBPort == "" {
			e.DBPort = "3306"
		}
	default:
		if e.DBImage == "" {
			e.DBImage = "mariadb:11"
		}
		if e.DBPort == "" {
			e.DBPort = "3306"
		}
	}
	return e
}

// Stack is a running set of containers
type Stack struct {
	Network             *testcontainers.DockerNetwork
	DBContainer         testcontainers.Container
	AuthorizerContainer testcontainers.Container
	ServiceContainer    testcontainers.Container
	BuilderContainer    testcontainers.Container

	// Config reaches the database from the host running the containers
	Config *config.Config

	// BaseURL reaches the Drink Trail service, set by StartAll
	BaseURL string
}

// Terminate stops every container of the stack, in reverse start order
func (s *Stack) Terminate(logf Logf) {
	ctx := context.Background()
	for _, c := range []struct {
		name      string
		container testcontainers.Container
	}{
		{"Drink Trail", s.ServiceContainer},
		{"Drink Trail Builder", s.BuilderContainer},
		{"Authorizer", s.AuthorizerContainer},
		{"database", s.DBContainer},
	} {
		if c.container == nil {
			continue
		}
		if err := c.container.Terminate(ctx); err != nil {
			logf("Failed to terminate %s: %v", c.name, err)
		}
	}
	if s.Network != nil {
		if err := s.Network.Remove(ctx); err != nil {
			logf("Failed to remove network: %v", err)
		}
	}
}

// StartDatabase starts a database container and initializes it
func StartDatabase(ctx context.Context, env Env, logf Logf) (*Stack, error) {
	env = env.withDefaults()
	stack := &Stack{}

	nw, err := network.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create network: %w", err)
	}
	stack.Network = nw

	if err := startDatabase(ctx, stack, env, logf); err != nil {
		stack.Terminate(logf)
		return nil, err
	}

	return stack, nil
}

// StartAll starts the database, the Authorizer when AuthzImage is set, and
// the Drink Trail service built from the Dockerfile in BuildContext
func StartAll(ctx context.Context, env Env, logf Logf) (*Stack, error) {
	stack, err := StartDatabase(ctx, env, logf)
	if err != nil {
		return nil, err
	}
	env = env.withDefaults()

	authzURL := ""
	if env.AuthzImage != "" {
		authzURL, err = startAuthorizer(ctx, stack, env, logf)
		if err != nil {
			stack.Terminate(logf)
			return nil, err
		}
	}

	if err := startService(ctx, stack, env, authzURL, logf); err != nil {
		stack.Terminate(logf)
		return nil, err
	}

	logf("Drink Trail testcontainers started successfully")
	return stack, nil
}

func startDatabase(ctx context.Context, stack *Stack, env Env, logf Logf) error {
	tcpDBPort, err := nat.NewPort("tcp", env.DBPort)
	if err != nil {
		return fmt.Errorf("failed to create DB port: %w", err)
	}

	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        env.DBImage,
			ExposedPorts: []string{string(tcpDBPort)},
			Env:          dbInitEnv(env),
			WaitingFor:   wait.ForListeningPort(tcpDBPort).WithStartupTimeout(90 * time.Second),
			Networks:     []string{stack.Network.Name},
			NetworkAliases: map[string][]string{
				stack.Network.Name: {env.DBHost},
			},
		},
		Started: true,
	})
	if err != nil {
		return fmt.Errorf("failed to start database: %w", err)
	}
	stack.DBContainer = dbContainer

	dbHost, err := dbContainer.Host(ctx)
	if err != nil {
		return fmt.Errorf("failed to get database host: %w", err)
	}
	dbPort, err := dbContainer.MappedPort(ctx, tcpDBPort)
	if err != nil {
		return fmt.Errorf("failed to get database port: %w", err)
	}
	logf("DB_HOST=%s DB_PORT=%s", dbHost, dbPort.Port())

	if env.DBType != "postgres" {
		if err := performMySQLInit(env, dbHost, dbPort); err != nil {
			return err
		}
	}

	stack.Config = &config.Config{
		DBType:            env.DBType,
		DBHost:            dbHost,
		DBPort:            dbPort.Port(),
		DBDatabase:        env.DBDatabase,
		DBUser:            env.DBUser,
		DBPassword:        env.DBPassword,
		DBConnectionLimit: 5,
	}
	return nil
}

func dbInitEnv(env Env) map[string]string {
	if env.DBType == "postgres" {
		return map[string]string{
			"POSTGRES_PASSWORD": env.DBPassword,
			"POSTGRES_USER":     env.DBUser,
			"POSTGRES_DB":       env.DBDatabase,
		}
	}
	return map[string]string{
		"MYSQL_ROOT_PASSWORD": env.DBRootPassword,
		"MYSQL_DATABASE":      env.DBDatabase,
		"MYSQL_USER":          env.DBUser,
		"MYSQL_PASSWORD":      env.DBPassword,
	}
}

// performMySQLInit waits for the server to accept root logins and creates the
// Authorizer database next to the application database
func performMySQLInit(env Env, dbHost string, dbPort nat.Port) error {
	db, err := sql.Open("mysql", fmt.Sprintf("root:%s@tcp(%s:%s)/", env.DBRootPassword, dbHost, dbPort.Port()))
	if err != nil {
		return fmt.Errorf("failed to connect to %s for setup: %w", env.DBType, err)
	}
	defer db.Close()

	// Wait for connection to be really ready
	for i := 0; i < 30; i++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		return fmt.Errorf("%s not ready after 30 seconds: %w", env.DBType, err)
	}

	statements := []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", env.DBDatabase),
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", env.AuthzDatabase),
		fmt.Sprintf("GRANT ALL PRIVILEGES ON %s.* TO '%s'@'%%'", env.DBDatabase, env.DBUser),
		"FLUSH PRIVILEGES",
	}
	for _, statement := range statements {
		if _, err := db.Exec(statement); err != nil {
			return fmt.Errorf("%s : when executing > %s", err.Error(), statement)
		}
	}

	return nil
}

func startAuthorizer(ctx context.Context, stack *Stack, env Env, logf Logf) (string, error) {
	const authzNetworkName = "authorizer"

	tcpAuthzPort, err := nat.NewPort("tcp", env.AuthzPort)
	if err != nil {
		return "", fmt.Errorf("failed to create Authorizer port: %w", err)
	}

	databaseURL := fmt.Sprintf("root:%s@tcp(%s:%s)/%s", env.DBRootPassword, env.DBHost, env.DBPort, env.AuthzDatabase)
	databaseName := env.AuthzDatabase
	if env.DBType == "postgres" {
		databaseURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", env.DBUser, env.DBPassword, env.DBHost, env.DBPort, env.DBDatabase)
		databaseName = env.DBDatabase
	}

	logLevel := "info"
	if env.Debug {
		logLevel = "debug"
	}

	authorizerContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        env.AuthzImage,
			ExposedPorts: []string{string(tcpAuthzPort)},
			Env: map[string]string{
				"ENV":           "production",
				"CLIENT_ID":     env.AuthzClientID,
				"PORT":          env.AuthzPort,
				"DATABASE_TYPE": authorizerDBType(env.DBType),
				"DATABASE_NAME": databaseName,
				"DATABASE_URL":  databaseURL,
				"ADMIN_SECRET":  env.AuthzAdminSecret,
				"ROLES":         "admin,user",
				"DEFAULT_ROLES": "user",
				"LOG_LEVEL":     logLevel,
			},
			WaitingFor: wait.ForLog("Authorizer running at PORT:").WithStartupTimeout(30 * time.Second),
			Networks:   []string{stack.Network.Name},
			NetworkAliases: map[string][]string{
				stack.Network.Name: {authzNetworkName},
			},
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to start Authorizer: %w", err)
	}
	stack.AuthorizerContainer = authorizerContainer

	// Log the localhost and mapped ports for Authorizer for test processes
	authzHost, _ := authorizerContainer.Host(ctx)
	authzPort, _ := authorizerContainer.MappedPort(ctx, tcpAuthzPort)
	logf("AUTHZ_URL=http://%s:%s", authzHost, authzPort.Port())

	return fmt.Sprintf("http://%s:%s", authzNetworkName, env.AuthzPort), nil
}

func authorizerDBType(dbType string) string {
	if dbType == "mariadb" {
		return "mariadb"
	}
	if dbType == "postgres" {
		return "postgres"
	}
	return "mysql"
}

func startService(ctx context.Context, stack *Stack, env Env, authzURL string, logf Logf) error {
	const imageName = "drinktrail-test:latest"

	exists, err := imageExists(ctx, imageName)
	if err != nil {
		return fmt.Errorf("failed to check if image exists: %w", err)
	}

	tcpServicePort, err := nat.NewPort("tcp", env.Port)
	if err != nil {
		return fmt.Errorf("failed to create service port: %w", err)
	}

	exposedPorts := []string{string(tcpServicePort)}
	if env.Debug {
		exposedPorts = append(exposedPorts, "2345/tcp")
	}

	hostConfigModifier := func(hostConfig *container.HostConfig) {
		if env.Debug {
			hostConfig.PortBindings = nat.PortMap{
				"2345/tcp": []nat.PortBinding{
					{HostIP: "127.0.0.1", HostPort: "2345"}, // Force local 2345
				},
			}
			hostConfig.CapAdd = []string{"SYS_PTRACE"}
			hostConfig.SecurityOpt = []string{"apparmor:unconfined"}
		}
	}

	var waitStrategy wait.Strategy
	waitStrategy = wait.ForHTTP("/healthz").WithPort(tcpServicePort).WithStartupTimeout(60 * time.Second)
	if env.Debug {
		waitStrategy = wait.ForLog("API server listening at: [::]:2345").WithStartupTimeout(5 * time.Minute)
	}

	request := testcontainers.ContainerRequest{
		ExposedPorts: exposedPorts,
		Env: map[string]string{
			"DB_TYPE":             env.DBType,
			"DB_HOST":             env.DBHost,
			"DB_PORT":             env.DBPort,
			"DB_DATABASE":         env.DBDatabase,
			"DB_USER":             env.DBUser,
			"DB_PASSWORD":         env.DBPassword,
			"DB_CONNECTION_LIMIT": "5",
			"AUTHZ_URL":           authzURL,
			"AUTHZ_CLIENT_ID":     env.AuthzClientID,
			"PORT":                env.Port,
		},
		HostConfigModifier: hostConfigModifier,
		WaitingFor:         waitStrategy,
		Networks:           []string{stack.Network.Name},
	}

	if env.Debug {
		request.Entrypoint = []string{
			"/usr/local/bin/dlv",
			"--listen=:2345",
			"--headless=true",
			"--api-version=2",
			"--accept-multiclient",
			"exec",
			"./drinktrail",
		}
	}

	if !exists {
		sessionID := uuid.New().String()
		buildArgs := map[string]*string{
			"RESOURCE_REAPER_SESSION_ID": &sessionID,
		}
		if env.Debug {
			debug := "true"
			buildArgs["DEBUG"] = &debug
		}

		logf("Image %s does not exist, building...", imageName)
		builder, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				FromDockerfile: testcontainers.FromDockerfile{
					Context:    env.BuildContext,
					Dockerfile: "Dockerfile",
					Repo:       "drinktrail-test-builder",
					Tag:        "latest",
					BuildArgs:  buildArgs,
					BuildOptionsModifier: func(opts *build.ImageBuildOptions) {
						opts.Target = "builder" // Build specific stage
					},
					PrintBuildLog: true,
				},
			},
			Started: false,
		})
		if err != nil {
			return fmt.Errorf("failed to build drinktrail-test-builder: %w", err)
		}
		stack.BuilderContainer = builder

		imageNameParts := strings.Split(imageName, ":")
		request.FromDockerfile = testcontainers.FromDockerfile{
			Context:    env.BuildContext,
			Dockerfile: "Dockerfile",
			Repo:       imageNameParts[0],
			Tag:        imageNameParts[1],
			KeepImage:  true, // Keep the image so we can reuse it
			BuildArgs:  buildArgs,
			BuildOptionsModifier: func(opts *build.ImageBuildOptions) {
				opts.Target = "runtime"
			},
			PrintBuildLog: true,
		}
	} else {
		logf("Image %s exists, reusing...", imageName)
		request.Image = imageName
	}

	serviceContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: request,
		Started:          true,
	})
	if err != nil {
		return fmt.Errorf("failed to start Drink Trail: %w", err)
	}
	stack.ServiceContainer = serviceContainer

	serviceHost, _ := serviceContainer.Host(ctx)
	servicePort, _ := serviceContainer.MappedPort(ctx, tcpServicePort)
	stack.BaseURL = fmt.Sprintf("http://%s:%s", serviceHost, servicePort.Port())
	logf("BASE_URL=%s", stack.BaseURL)

	return nil
}

func imageExists(ctx context.Context, imageName string) (bool, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false, err
	}
	defer cli.Close()

	images, err := cli.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return false, err
	}

	for _, img := range images {
		for _, tag := range img.RepoTags {
			if tag == imageName {
				return true, nil
			}
		}
	}

	return false, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
