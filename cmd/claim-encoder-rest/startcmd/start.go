/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package startcmd starts the claim encoder REST server.
package startcmd

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/hyperledger/aries-claim-encoder/pkg/common/log"
	"github.com/hyperledger/aries-claim-encoder/pkg/controller"
)

const (
	// api host flag.
	apiHostFlagName      = "api-host"
	apiHostEnvKey        = "CLAIMD_API_HOST"
	apiHostFlagShorthand = "a"
	apiHostFlagUsage     = "Host Name:Port." +
		" Alternatively, this can be set with the following environment variable: " + apiHostEnvKey

	// api token flag.
	apiTokenFlagName      = "api-token"
	apiTokenEnvKey        = "CLAIMD_API_TOKEN" // nolint:gosec
	apiTokenFlagShorthand = "t"
	apiTokenFlagUsage     = "Check for bearer token in the authorization header (optional)." +
		" Alternatively, this can be set with the following environment variable: " + apiTokenEnvKey

	// log level.
	logLevelFlagName  = "log-level"
	logLevelEnvKey    = "CLAIMD_LOG_LEVEL"
	logLevelFlagUsage = "Log level." +
		" Possible values [INFO] [DEBUG] [ERROR] [WARNING] [CRITICAL] . Defaults to INFO if not set." +
		" Alternatively, this can be set with the following environment variable: " + logLevelEnvKey

	tlsCertFileFlagName      = "tls-cert-file"
	tlsCertFileEnvKey        = "TLS_CERT_FILE"
	tlsCertFileFlagShorthand = "c"
	tlsCertFileFlagUsage     = "tls certificate file." +
		" Alternatively, this can be set with the following environment variable: " + tlsCertFileEnvKey

	tlsKeyFileFlagName      = "tls-key-file"
	tlsKeyFileEnvKey        = "TLS_KEY_FILE"
	tlsKeyFileFlagShorthand = "k"
	tlsKeyFileFlagUsage     = "tls key file." +
		" Alternatively, this can be set with the following environment variable: " + tlsKeyFileEnvKey

	// field check flag.
	fieldCheckFlagName  = "field-check"
	fieldCheckEnvKey    = "CLAIMD_FIELD_CHECK"
	fieldCheckFlagUsage = "Reject encoded claims with words outside the BN254 scalar field." +
		" Possible values [true] [false]. Defaults to false if not set." +
		" Alternatively, this can be set with the following environment variable: " + fieldCheckEnvKey

	// schema cache flag.
	schemaCacheSizeFlagName  = "schema-cache-size"
	schemaCacheSizeEnvKey    = "CLAIMD_SCHEMA_CACHE_SIZE"
	schemaCacheSizeFlagUsage = "Number of derived schema hashes to cache. 0 disables the cache." +
		" Alternatively, this can be set with the following environment variable: " + schemaCacheSizeEnvKey

	// listen timeout flag.
	listenTimeoutFlagName  = "listen-timeout"
	listenTimeoutEnvKey    = "CLAIMD_LISTEN_TIMEOUT"
	listenTimeoutFlagUsage = "Total time in seconds to keep retrying to bind the api host." +
		" Only bind failures are retried. Default: 0 (no retries)." +
		" Alternatively, this can be set with the following environment variable: " + listenTimeoutEnvKey

	requestIDHeader = "X-Request-ID"
)

var (
	errMissingHost = errors.New("host not provided")
	logger         = log.New("claim-encoder/rest-server")
)

type serverParameters struct {
	server                  server
	host, token             string
	tlsCertFile, tlsKeyFile string
	fieldCheck              bool
	schemaCacheSize         *int
	listenTimeout           uint64
}

type server interface {
	ListenAndServe(host string, router http.Handler, certFile, keyFile string) error
}

// HTTPServer represents an actual server implementation.
type HTTPServer struct{}

// ListenAndServe starts the server using the standard Go HTTP server implementation.
func (s *HTTPServer) ListenAndServe(host string, router http.Handler, certFile, keyFile string) error {
	if certFile != "" && keyFile != "" {
		return http.ListenAndServeTLS(host, certFile, keyFile, router)
	}

	return http.ListenAndServe(host, router)
}

// Cmd returns the Cobra start command.
func Cmd(server server) (*cobra.Command, error) {
	startCmd := createStartCMD(server)

	createFlags(startCmd)

	return startCmd, nil
}

func createStartCMD(server server) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the claim encoder",
		Long:  `Start the claim encoder REST API`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logLevel, err := getUserSetVar(cmd, logLevelFlagName, logLevelEnvKey, true)
			if err != nil {
				return err
			}

			err = setLogLevel(logLevel)
			if err != nil {
				return err
			}

			parameters, err := getServerParameters(cmd, server)
			if err != nil {
				return err
			}

			return startServer(parameters)
		},
	}
}

func getServerParameters(cmd *cobra.Command, server server) (*serverParameters, error) {
	host, err := getUserSetVar(cmd, apiHostFlagName, apiHostEnvKey, false)
	if err != nil {
		return nil, err
	}

	token, err := getUserSetVar(cmd, apiTokenFlagName, apiTokenEnvKey, true)
	if err != nil {
		return nil, err
	}

	tlsCertFile, err := getUserSetVar(cmd, tlsCertFileFlagName, tlsCertFileEnvKey, true)
	if err != nil {
		return nil, err
	}

	tlsKeyFile, err := getUserSetVar(cmd, tlsKeyFileFlagName, tlsKeyFileEnvKey, true)
	if err != nil {
		return nil, err
	}

	fieldCheck, err := getBoolValue(cmd, fieldCheckFlagName, fieldCheckEnvKey)
	if err != nil {
		return nil, err
	}

	parameters := &serverParameters{
		server:      server,
		host:        host,
		token:       token,
		tlsCertFile: tlsCertFile,
		tlsKeyFile:  tlsKeyFile,
		fieldCheck:  fieldCheck,
	}

	cacheSize, err := getUserSetVar(cmd, schemaCacheSizeFlagName, schemaCacheSizeEnvKey, true)
	if err != nil {
		return nil, err
	}

	if cacheSize != "" {
		size, convErr := strconv.Atoi(cacheSize)
		if convErr != nil || size < 0 {
			return nil, fmt.Errorf("invalid schema cache size '%s'", cacheSize)
		}

		parameters.schemaCacheSize = &size
	}

	listenTimeout, err := getUserSetVar(cmd, listenTimeoutFlagName, listenTimeoutEnvKey, true)
	if err != nil {
		return nil, err
	}

	if listenTimeout != "" {
		parameters.listenTimeout, err = strconv.ParseUint(listenTimeout, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("failed to parse listen timeout %s: %w", listenTimeout, err)
		}
	}

	return parameters, nil
}

func getBoolValue(cmd *cobra.Command, flagName, envKey string) (bool, error) {
	v, err := getUserSetVar(cmd, flagName, envKey, true)
	if err != nil {
		return false, err
	}

	if v == "" {
		return false, nil
	}

	return strconv.ParseBool(v)
}

func createFlags(startCmd *cobra.Command) {
	// api host flag
	startCmd.Flags().StringP(apiHostFlagName, apiHostFlagShorthand, "", apiHostFlagUsage)

	// api token flag
	startCmd.Flags().StringP(apiTokenFlagName, apiTokenFlagShorthand, "", apiTokenFlagUsage)

	// log level
	startCmd.Flags().StringP(logLevelFlagName, "", "", logLevelFlagUsage)

	// tls cert file
	startCmd.Flags().StringP(tlsCertFileFlagName, tlsCertFileFlagShorthand, "", tlsCertFileFlagUsage)

	// tls key file
	startCmd.Flags().StringP(tlsKeyFileFlagName, tlsKeyFileFlagShorthand, "", tlsKeyFileFlagUsage)

	startCmd.Flags().StringP(fieldCheckFlagName, "", "", fieldCheckFlagUsage)
	startCmd.Flags().StringP(schemaCacheSizeFlagName, "", "", schemaCacheSizeFlagUsage)
	startCmd.Flags().StringP(listenTimeoutFlagName, "", "", listenTimeoutFlagUsage)
}

func getUserSetVar(cmd *cobra.Command, flagName, envKey string, isOptional bool) (string, error) {
	if cmd.Flags().Changed(flagName) {
		value, err := cmd.Flags().GetString(flagName)
		if err != nil {
			return "", fmt.Errorf(flagName+" flag not found: %s", err)
		}

		return value, nil
	}

	value, isSet := os.LookupEnv(envKey)

	if isOptional || isSet {
		return value, nil
	}

	return "", errors.New("Neither " + flagName + " (command line flag) nor " + envKey +
		" (environment variable) have been set.")
}

func setLogLevel(logLevel string) error {
	if logLevel != "" {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("failed to parse log level '%s' : %w", logLevel, err)
		}

		log.SetLevel("", level)

		logger.Infof("logger level set to %s", logLevel)
	}

	return nil
}

func validateAuthorizationBearerToken(w http.ResponseWriter, r *http.Request, token string) bool {
	actHdr := r.Header.Get("Authorization")
	expHdr := "Bearer " + token

	if subtle.ConstantTimeCompare([]byte(actHdr), []byte(expHdr)) != 1 {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("Unauthorised.\n")) // nolint:gosec,errcheck

		return false
	}

	return true
}

func authorizationMiddleware(token string) mux.MiddlewareFunc {
	middleware := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if validateAuthorizationBearerToken(w, r, token) {
				next.ServeHTTP(w, r)
			}
		})
	}

	return middleware
}

// requestIDMiddleware tags every request with an X-Request-ID, generating one when the client did not send it.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
			r.Header.Set(requestIDHeader, id)
		}

		w.Header().Set(requestIDHeader, id)

		logger.Debugf("request id=[%s] method=[%s] path=[%s]", id, r.Method, r.URL.Path)

		next.ServeHTTP(w, r)
	})
}

func newRouter(parameters *serverParameters) http.Handler {
	opts := []controller.Opt{controller.WithFieldCheck(parameters.fieldCheck)}
	if parameters.schemaCacheSize != nil {
		opts = append(opts, controller.WithSchemaCacheSize(*parameters.schemaCacheSize))
	}

	router := mux.NewRouter()

	router.Use(requestIDMiddleware)

	if parameters.token != "" {
		router.Use(authorizationMiddleware(parameters.token))
	}

	for _, handler := range controller.GetRESTHandlers(opts...) {
		router.HandleFunc(handler.Path(), handler.Handle()).Methods(handler.Method())
	}

	return cors.New(
		cors.Options{
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodHead},
			AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With", "Authorization",
				requestIDHeader},
			ExposedHeaders: []string{requestIDHeader},
		},
	).Handler(router)
}

func startServer(parameters *serverParameters) error {
	if parameters.host == "" {
		return errMissingHost
	}

	handler := newRouter(parameters)

	logger.Infof("Starting claim encoder rest on host [%s]", parameters.host)

	err := backoff.RetryNotify(
		func() error {
			serveErr := parameters.server.ListenAndServe(parameters.host, handler, parameters.tlsCertFile,
				parameters.tlsKeyFile)
			if serveErr != nil && !isBindError(serveErr) {
				return backoff.Permanent(serveErr)
			}

			return serveErr
		},
		backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), parameters.listenTimeout),
		func(retryErr error, t time.Duration) {
			logger.Warnf("failed to start server, will sleep for %s before trying again : %s", t, retryErr)
		},
	)
	if err != nil {
		return fmt.Errorf("failed to start claim encoder rest on port [%s], cause:  %w", parameters.host, err)
	}

	return nil
}

// isBindError reports whether err came from listening on the api host.
// Errors raised once the server is up are not retried.
func isBindError(err error) bool {
	var opErr *net.OpError

	return errors.As(err, &opErr) && opErr.Op == "listen"
}
