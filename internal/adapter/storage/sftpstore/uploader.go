// Package sftpstore uploads course material files to the static file host
// over SFTP.
package sftpstore

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"

	"github.com/skillone/skillone-backend/internal/config"
)

// Uploader pushes files to the configured SFTP host and returns their
// public URLs. Each upload dials a fresh connection; uploads are rare
// enough that pooling is not worth it.
type Uploader struct {
	cfg config.StorageConfig
	log *slog.Logger
}

// New creates an Uploader from config.
func New(cfg config.StorageConfig, logger *slog.Logger) *Uploader {
	return &Uploader{
		cfg: cfg,
		log: logger.With("adapter", "sftpstore"),
	}
}

// Upload writes the content to remoteDir/fileName on the SFTP host and
// returns the public URL the file is served from.
func (u *Uploader) Upload(ctx context.Context, fileName string, content io.Reader) (string, error) {
	sshCfg := &ssh.ClientConfig{
		User: u.cfg.User,
		Auth: []ssh.AuthMethod{ssh.Password(u.cfg.Password)},
		// The file host lives on the same private network; host key
		// pinning is handled at the network layer.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         20 * time.Second,
	}

	sshClient, err := u.dial(ctx, sshCfg)
	if err != nil {
		return "", err
	}
	defer sshClient.Close()

	sftpClient, err := sftp.NewClient(sshClient)
	if err != nil {
		return "", fmt.Errorf("sftp: new client: %w", err)
	}
	defer sftpClient.Close()

	if err := sftpClient.MkdirAll(u.cfg.RemoteDir); err != nil {
		return "", fmt.Errorf("sftp: mkdir %s: %w", u.cfg.RemoteDir, err)
	}

	remotePath := path.Join(u.cfg.RemoteDir, fileName)
	dst, err := sftpClient.Create(remotePath)
	if err != nil {
		return "", fmt.Errorf("sftp: create remote file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, content)
	if err != nil {
		return "", fmt.Errorf("sftp: upload copy: %w", err)
	}

	u.log.InfoContext(ctx, "file uploaded",
		slog.String("remote_path", remotePath),
		slog.Int64("bytes", written),
	)

	return u.PublicURL(fileName), nil
}

// PublicURL returns the URL the uploaded file is served from.
func (u *Uploader) PublicURL(fileName string) string {
	return strings.TrimRight(u.cfg.PublicBaseURL, "/") + "/" + fileName
}

// dial opens the SSH connection, honoring context cancellation.
func (u *Uploader) dial(ctx context.Context, sshCfg *ssh.ClientConfig) (*ssh.Client, error) {
	addr := fmt.Sprintf("%s:%d", u.cfg.Host, u.cfg.Port)

	type dialResult struct {
		client *ssh.Client
		err    error
	}
	ch := make(chan dialResult, 1)
	go func() {
		client, err := ssh.Dial("tcp", addr, sshCfg)
		ch <- dialResult{client: client, err: err}
	}()

	select {
	case <-ctx.Done():
		go func() {
			if r := <-ch; r.client != nil {
				r.client.Close()
			}
		}()
		return nil, fmt.Errorf("sftp: dial canceled: %w", ctx.Err())
	case r := <-ch:
		if r.err != nil {
			return nil, fmt.Errorf("sftp: dial %s: %w", addr, r.err)
		}
		return r.client, nil
	}
}
