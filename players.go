package cpl

import "context"

// PlayerDirectoryEntry is one row of the league's player directory, the
// only feed carrying photos and bios.
type PlayerDirectoryEntry struct {
	ID       string
	Name     string
	PhotoURL string
	Bio      string
}

type playersEnvelope struct {
	Players []wireDirectoryPlayer `json:"players" validate:"required,dive"`
}

type wireDirectoryPlayer struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail"`
	Default   string `json:"default"`
	Bio       string `json:"bio"`
}

// Players retrieves the full player directory.
func (c *Client) Players(ctx context.Context) ([]PlayerDirectoryEntry, error) {
	ctx, span := startSpan(ctx, opPlayers)
	defer span.End()

	var envelope playersEnvelope
	if err := c.getJSON(ctx, c.playersRequest(), &envelope); err != nil {
		return nil, err
	}

	out := make([]PlayerDirectoryEntry, 0, len(envelope.Players))
	for _, player := range envelope.Players {
		out = append(out, mapDirectoryEntry(player))
	}
	return out, nil
}

func mapDirectoryEntry(player wireDirectoryPlayer) PlayerDirectoryEntry {
	photo := player.Thumbnail
	if photo == "" {
		photo = player.Default
	}
	return PlayerDirectoryEntry{
		ID:       player.ID,
		Name:     player.Name,
		PhotoURL: photo,
		Bio:      player.Bio,
	}
}

// playerDirectory loads the directory at most once per client. A failed
// load is logged and tolerated: enrichment is best-effort, the directory
// host is flakier than the data feeds.
func (c *Client) playerDirectory(ctx context.Context) map[string]PlayerDirectoryEntry {
	c.dirOnce.Do(func() {
		entries, err := c.Players(ctx)
		if err != nil {
			c.logger.WarnContext(ctx, "player directory load failed, entities stay unenriched", "error", err)
			return
		}
		directory := make(map[string]PlayerDirectoryEntry, len(entries))
		for _, entry := range entries {
			if entry.ID != "" {
				directory[entry.ID] = entry
			}
		}
		c.directory = directory
		c.logger.DebugContext(ctx, "player directory loaded", "players", len(directory))
	})
	return c.directory
}
