package cascadekit

import (
	"fmt"
	"io"
	"runtime"
)

// AppName is the name reported by the version command and the status endpoints.
const AppName = "cascadekit"

// Populated during build, don't touch!
var (
	Version   = "v0.1.0"
	GitRev    = "undefined"
	GitBranch = "undefined"
	BuildDate = "Fri, 17 Jun 1988 01:58:00 +0200"
)

// PrintVersion prints version info into the provided io.Writer.
func PrintVersion(w io.Writer) {
	data := GetVersion()
	fmt.Fprintf(w, "%s", data.String())
}

type FullVersion struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GitRev    string `json:"git_revision"`
	GitBranch string `json:"git_branch"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

func GetVersion() FullVersion {
	return FullVersion{
		Name:      AppName,
		Version:   Version,
		GitRev:    GitRev,
		GitBranch: GitBranch,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

func (f FullVersion) String() string {
	return fmt.Sprintf("%s\n"+
		"Version:      %s\n"+
		"Git revision: %s\n"+
		"Git branch:   %s\n"+
		"Go version:   %s\n"+
		"Built:        %s\n"+
		"OS/Arch:      %s/%s\n",
		f.Name, f.Version, f.GitRev, f.GitBranch,
		f.GoVersion, f.BuildDate, f.OS, f.Arch)
}

// Brief is the one-line form used in the startup log line.
func (f FullVersion) Brief() string {
	return fmt.Sprintf("%s %s - %s / %s - build:%s os:%s/%s",
		f.Name, f.Version, f.GitRev, f.GitBranch,
		f.BuildDate, f.OS, f.Arch)
}
