package config

const (
	defaultCameraDir     = "~/Pictures/Camera"
	defaultOutputDir     = "~/Pictures/Camera/daily"
	defaultStateDir      = "~/.local/share/camkit"
	defaultRemoteDir     = "/sdcard/DCIM/Camera"
	defaultADBBinary     = "adb"
	defaultFFmpegBinary  = "ffmpeg"
	defaultFFprobeBinary = "ffprobe"
	defaultTargetSeconds = 180
	defaultWatchInterval = 60
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CameraDir: defaultCameraDir,
			OutputDir: defaultOutputDir,
			StateDir:  defaultStateDir,
		},
		Engine: Engine{
			FFmpegBinary:  defaultFFmpegBinary,
			FFprobeBinary: defaultFFprobeBinary,
		},
		Merge: Merge{
			TargetSeconds: defaultTargetSeconds,
			Extensions:    []string{".mp4", ".avi", ".mkv"},
		},
		Sync: Sync{
			RemoteDir:    defaultRemoteDir,
			ADBBinary:    defaultADBBinary,
			ExcludeGlobs: []string{".trashed*", ".pending*"},
		},
		Watch: Watch{
			IntervalMinutes: defaultWatchInterval,
			SyncEnabled:     true,
			MergeEnabled:    true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
