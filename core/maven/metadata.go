package maven

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

type metadataDocument struct {
	XMLName  xml.Name `xml:"metadata"`
	Versions []string `xml:"versioning>versions>version"`
}

type pomDocument struct {
	XMLName      xml.Name        `xml:"project"`
	Dependencies []pomDependency `xml:"dependencies>dependency"`
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type detailsDocument struct {
	Files []struct {
		Name string `json:"name"`
		Type string `json:"type"`
	} `json:"files"`
}

// MetadataURL is the url of an artifact's maven-metadata.xml.
func MetadataURL(repo, group, artifact string) string {
	return repoBase(repo) + strings.ReplaceAll(group, ".", "/") + "/" + artifact + "/maven-metadata.xml"
}

// PomURL is the url of an artifact version's POM.
func PomURL(repo, group, artifact, version string) string {
	return repoBase(repo) + strings.ReplaceAll(group, ".", "/") + "/" + artifact + "/" + version + "/" + artifact + "-" + version + ".pom"
}

func repoBase(repo string) string {
	if strings.HasSuffix(repo, "/") {
		return repo
	}
	return repo + "/"
}

// FetchVersions lists the published versions of an artifact as maven
// coordinates, newest first. When required is false any failure degrades to
// an empty list.
func (c *Client) FetchVersions(ctx context.Context, repo, group, artifact string, required bool) ([]string, error) {
	u := MetadataURL(repo, group, artifact)

	versions, err := c.fetchVersions(ctx, u, group, artifact)
	if err != nil {
		if required {
			return nil, err
		}
		c.logger.Warn("Optional artifact unavailable, using empty version list",
			zap.String("artifact", group+":"+artifact),
			zap.Error(err),
		)
		return []string{}, nil
	}
	return versions, nil
}

func (c *Client) fetchVersions(ctx context.Context, u, group, artifact string) ([]string, error) {
	body, err := c.Fetch(ctx, u)
	if err != nil {
		return nil, err
	}

	var doc metadataDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, &FetchError{URL: u, Err: fmt.Errorf("decoding maven metadata: %w", err)}
	}

	out := make([]string, 0, len(doc.Versions))
	for i := len(doc.Versions) - 1; i >= 0; i-- {
		v := strings.TrimSpace(doc.Versions[i])
		if v == "" {
			continue
		}
		out = append(out, group+":"+artifact+":"+v)
	}
	return out, nil
}

// FetchDependencies lists the dependency coordinates declared in a POM that
// pass filter. A nil filter keeps everything.
func (c *Client) FetchDependencies(ctx context.Context, repo, group, artifact, version string, filter func(string) bool) ([]string, error) {
	u := PomURL(repo, group, artifact, version)

	body, err := c.Fetch(ctx, u)
	if err != nil {
		return nil, err
	}

	var doc pomDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, &FetchError{URL: u, Err: fmt.Errorf("decoding pom: %w", err)}
	}

	out := make([]string, 0, len(doc.Dependencies))
	for _, d := range doc.Dependencies {
		coord := strings.TrimSpace(d.GroupID) + ":" + strings.TrimSpace(d.ArtifactID) + ":" + strings.TrimSpace(d.Version)
		if filter != nil && !filter(coord) {
			continue
		}
		out = append(out, coord)
	}
	return out, nil
}

// ListDirectories returns the names of directory entries in a repository
// details document, skipping version directories (names starting with a
// digit). A missing document yields an empty list.
func (c *Client) ListDirectories(ctx context.Context, detailsURL string) ([]string, error) {
	body, err := c.Fetch(ctx, detailsURL)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []string{}, nil
		}
		return nil, err
	}

	var doc detailsDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &FetchError{URL: detailsURL, Err: fmt.Errorf("decoding details: %w", err)}
	}

	out := make([]string, 0, len(doc.Files))
	for _, f := range doc.Files {
		if f.Name == "" || f.Type != "DIRECTORY" {
			continue
		}
		if unicode.IsDigit(rune(f.Name[0])) {
			continue
		}
		out = append(out, f.Name)
	}
	return out, nil
}
