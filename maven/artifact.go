// Package maven downloads jars from a Maven repository so their classes can
// be resolved like any other classpath entry.
package maven

import (
	"fmt"
	"path"
	"strings"
)

// Artifact is a Maven coordinate: groupId:artifactId:version or
// groupId:artifactId:classifier:version.
type Artifact struct {
	GroupID    string
	ArtifactID string
	Version    string
	Classifier string
}

func ParseArtifact(coord string) (Artifact, error) {
	parts := strings.Split(strings.TrimSpace(coord), ":")
	var a Artifact
	switch len(parts) {
	case 3:
		a = Artifact{GroupID: parts[0], ArtifactID: parts[1], Version: parts[2]}
	case 4:
		a = Artifact{GroupID: parts[0], ArtifactID: parts[1], Classifier: parts[2], Version: parts[3]}
	default:
		return Artifact{}, fmt.Errorf("invalid Maven coordinate: %s (expected groupId:artifactId:version or groupId:artifactId:classifier:version)", coord)
	}
	for _, p := range parts {
		if p == "" || strings.ContainsAny(p, "/\\ ") {
			return Artifact{}, fmt.Errorf("invalid Maven coordinate: %s", coord)
		}
	}
	return a, nil
}

func (a Artifact) String() string {
	if a.Classifier != "" {
		return a.GroupID + ":" + a.ArtifactID + ":" + a.Classifier + ":" + a.Version
	}
	return a.GroupID + ":" + a.ArtifactID + ":" + a.Version
}

// FileName is the jar's name, e.g. guava-33.0.0-jre.jar.
func (a Artifact) FileName() string {
	if a.Classifier != "" {
		return fmt.Sprintf("%s-%s-%s.jar", a.ArtifactID, a.Version, a.Classifier)
	}
	return fmt.Sprintf("%s-%s.jar", a.ArtifactID, a.Version)
}

// Path is the jar's location relative to the repository root, using the
// standard layout group/path/artifact/version/file.
func (a Artifact) Path() string {
	return path.Join(strings.ReplaceAll(a.GroupID, ".", "/"), a.ArtifactID, a.Version, a.FileName())
}
