package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"elmdecode.dev/pkg/elmdecode/internal/adapter"
	"elmdecode.dev/pkg/elmdecode/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "elmdecode"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	projectFlagName     = "project"
	descriptorFlagName  = "descriptor"
	timeoutFlagName     = "timeout"
	runParallelFlagName = "parallel"
	reportFlagName      = "report"
	interactiveFlagName = "interactive"
	verboseFlagName     = "verbose"
	logFileFlagName     = "log-file"

	projectDirKey        = "project.dir"
	projectDescriptorKey = "project.descriptor"
	compilerCommandKey   = "compiler.command"
	selectorCommandKey   = "selector.command"
	selectorPromptKey    = "selector.prompt"
	runParallelConfigKey = "run.parallel"
	runTimeoutKey        = "run.timeout"

	defaultProjectDir  = "."
	defaultRunParallel = 0
	defaultRunTimeout  = time.Minute

	envPrefix = "ELMDECODE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogBaseName   = "elmdecode.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// configLoadErr holds a config file that exists but cannot be parsed. It is
// reported when a command runs rather than at package init.
var configLoadErr error

func init() {
	initConfig()
}

// initConfig registers the config file location, the environment prefix and
// every default, then reads elmdecode.yaml when present.
func initConfig() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(projectDirKey, defaultProjectDir)
	viper.SetDefault(projectDescriptorKey, adapter.DefaultDescriptorName)
	viper.SetDefault(compilerCommandKey, adapter.DefaultCompilerCommand)
	viper.SetDefault(selectorCommandKey, adapter.DefaultSelectorCommand)
	viper.SetDefault(selectorPromptKey, adapter.DefaultSelectorPrompt)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(runTimeoutKey, int64(defaultRunTimeout.Seconds()))

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename())
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	configLoadErr = nil

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		configLoadErr = fmt.Errorf("%w: reading %s: %w", domain.ErrConfiguration, configFileName, err)
	}
}

// defaultLogFilename keeps the log out of the Elm project, which is scanned
// and patched.
func defaultLogFilename() string {
	return filepath.Join(os.TempDir(), defaultLogBaseName)
}

// descriptorPath joins project.dir and project.descriptor unless the
// descriptor is already absolute.
func descriptorPath() string {
	descriptor := viper.GetString(projectDescriptorKey)
	if strings.TrimSpace(descriptor) == "" {
		descriptor = adapter.DefaultDescriptorName
	}

	if filepath.IsAbs(descriptor) {
		return descriptor
	}

	dir := viper.GetString(projectDirKey)
	if strings.TrimSpace(dir) == "" {
		dir = defaultProjectDir
	}

	return filepath.Join(dir, descriptor)
}

// runTimeout returns the per-decoder timeout; zero or negative disables it.
func runTimeout() time.Duration {
	seconds := viper.GetInt64(runTimeoutKey)
	if seconds <= 0 {
		return 0
	}

	return time.Duration(seconds) * time.Second
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename()
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
