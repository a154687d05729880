package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/talentproph/talentpro/pkg/messaging"
	pgstore "github.com/talentproph/talentpro/pkg/storage/postgres"
)

const conversationColumns = `c.id, c.employer_id, c.seeker_id, c.job_id, c.last_message, c.last_message_at,
	c.last_sender_id, c.is_pinned_employer, c.is_archived_employer, c.is_spam_employer, c.is_deleted_employer,
	c.is_pinned_seeker, c.is_archived_seeker, c.is_spam_seeker, c.is_deleted_seeker, c.created_at`

const messageColumns = `id, conversation_id, sender_id, content, is_read, client_id, created_at`

const labelColumns = `l.id, l.employer_id, l.name, l.color, l.created_at`

// ConversationRepository implements messaging.Repository.
type ConversationRepository struct {
	pool *pgxpool.Pool
}

func NewConversationRepository(pool *pgxpool.Pool) *ConversationRepository {
	return &ConversationRepository{pool: pool}
}

func conversationDest(c *messaging.Conversation) []any {
	return []any{&c.ID, &c.EmployerID, &c.SeekerID, &c.JobID, &c.LastMessage, &c.LastMessageAt,
		&c.LastSenderID, &c.Employer.Pinned, &c.Employer.Archived, &c.Employer.Spam, &c.Employer.Deleted,
		&c.Seeker.Pinned, &c.Seeker.Archived, &c.Seeker.Spam, &c.Seeker.Deleted, &c.CreatedAt}
}

func normalizeConversation(c *messaging.Conversation) {
	c.CreatedAt = c.CreatedAt.UTC()
	if c.LastMessageAt != nil {
		t := c.LastMessageAt.UTC()
		c.LastMessageAt = &t
	}
}

func scanConversation(row pgx.Row) (messaging.Conversation, error) {
	var c messaging.Conversation
	if err := row.Scan(conversationDest(&c)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return messaging.Conversation{}, messaging.ErrNotFound
		}
		return messaging.Conversation{}, errors.Wrap(err, "scan conversation")
	}
	normalizeConversation(&c)
	return c, nil
}

func scanMessage(row pgx.Row) (messaging.Message, error) {
	var m messaging.Message
	if err := row.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.Content, &m.IsRead, &m.ClientID, &m.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return messaging.Message{}, messaging.ErrMessageNotFound
		}
		return messaging.Message{}, errors.Wrap(err, "scan message")
	}
	m.CreatedAt = m.CreatedAt.UTC()
	return m, nil
}

func scanLabel(row pgx.Row) (messaging.Label, error) {
	var l messaging.Label
	if err := row.Scan(&l.ID, &l.EmployerID, &l.Name, &l.Color, &l.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return messaging.Label{}, messaging.ErrLabelNotFound
		}
		return messaging.Label{}, errors.Wrap(err, "scan label")
	}
	l.CreatedAt = l.CreatedAt.UTC()
	return l, nil
}

// participantColumns returns the viewer's and the counterpart's id column for side.
func participantColumns(side messaging.Side) (own, other string, err error) {
	switch side {
	case messaging.SideEmployer:
		return "employer_id", "seeker_id", nil
	case messaging.SideSeeker:
		return "seeker_id", "employer_id", nil
	}
	return "", "", errors.Errorf("unknown side %q", side)
}

var flagPrefixes = map[messaging.Flag]string{
	messaging.FlagPinned:   "is_pinned",
	messaging.FlagArchived: "is_archived",
	messaging.FlagSpam:     "is_spam",
	messaging.FlagDeleted:  "is_deleted",
}

// flagColumn maps (side, flag) onto one of the eight flag columns. Only
// whitelisted names ever reach the SQL text.
func flagColumn(side messaging.Side, flag messaging.Flag) (string, error) {
	prefix, ok := flagPrefixes[flag]
	if !ok {
		return "", errors.Errorf("unknown flag %q", flag)
	}
	if side != messaging.SideEmployer && side != messaging.SideSeeker {
		return "", errors.Errorf("unknown side %q", side)
	}
	return prefix + "_" + string(side), nil
}

func (r *ConversationRepository) ListForUser(ctx context.Context, userID uuid.UUID, side messaging.Side) ([]messaging.Row, error) {
	own, other, err := participantColumns(side)
	if err != nil {
		return nil, err
	}
	name := "p.full_name"
	if side == messaging.SideSeeker {
		name = "COALESCE(NULLIF(p.company_name, ''), p.full_name)"
	}
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
SELECT %s, c.%s, NULLIF(%s, ''), NULLIF(p.avatar_url, ''), j.title,
	(SELECT count(*) FROM messages m WHERE m.conversation_id = c.id AND m.sender_id <> $1 AND NOT m.is_read)
FROM conversations c
LEFT JOIN profiles p ON p.id = c.%s
LEFT JOIN job_posts j ON j.id = c.job_id
WHERE c.%s = $1
ORDER BY COALESCE(c.last_message_at, c.created_at) DESC, c.id
`, conversationColumns, other, name, other, own), userID)
	if err != nil {
		return nil, errors.Wrap(err, "list conversations")
	}
	items, err := collect(rows, func(row pgx.Row) (messaging.Row, error) {
		var it messaging.Row
		dest := append(conversationDest(&it.Conversation),
			&it.CounterpartID, &it.CounterpartName, &it.CounterpartAvatar, &it.JobTitle, &it.Unread)
		if err := row.Scan(dest...); err != nil {
			return messaging.Row{}, errors.Wrap(err, "scan conversation row")
		}
		normalizeConversation(&it.Conversation)
		return it, nil
	})
	if err != nil || side != messaging.SideEmployer || len(items) == 0 {
		return items, err
	}

	labels, err := r.labelsByConversation(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Labels = labels[items[i].ID]
	}
	return items, nil
}

func (r *ConversationRepository) labelsByConversation(ctx context.Context, employerID uuid.UUID) (map[uuid.UUID][]messaging.Label, error) {
	rows, err := r.pool.Query(ctx, `
SELECT cl.conversation_id, `+labelColumns+`
FROM conversation_labels cl
JOIN labels l ON l.id = cl.label_id
WHERE l.employer_id = $1
ORDER BY l.name
`, employerID)
	if err != nil {
		return nil, errors.Wrap(err, "list conversation labels")
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]messaging.Label)
	for rows.Next() {
		var (
			convID uuid.UUID
			l      messaging.Label
		)
		if err := rows.Scan(&convID, &l.ID, &l.EmployerID, &l.Name, &l.Color, &l.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan conversation label")
		}
		l.CreatedAt = l.CreatedAt.UTC()
		out[convID] = append(out[convID], l)
	}
	return out, errors.Wrap(rows.Err(), "list conversation labels")
}

func (r *ConversationRepository) GetConversation(ctx context.Context, id uuid.UUID) (messaging.Conversation, error) {
	return scanConversation(r.pool.QueryRow(ctx, `SELECT `+conversationColumns+` FROM conversations c WHERE c.id = $1`, id))
}

func (r *ConversationRepository) FindOrCreate(ctx context.Context, c messaging.Conversation) (messaging.Conversation, error) {
	_, err := r.pool.Exec(ctx, `
INSERT INTO conversations (id, employer_id, seeker_id, job_id, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (employer_id, seeker_id, (COALESCE(job_id, '00000000-0000-0000-0000-000000000000'::uuid))) DO NOTHING
`, c.ID, c.EmployerID, c.SeekerID, c.JobID, c.CreatedAt)
	if err != nil {
		return messaging.Conversation{}, errors.Wrap(err, "insert conversation")
	}
	return scanConversation(r.pool.QueryRow(ctx, `
SELECT `+conversationColumns+` FROM conversations c
WHERE c.employer_id = $1 AND c.seeker_id = $2 AND c.job_id IS NOT DISTINCT FROM $3::uuid
`, c.EmployerID, c.SeekerID, c.JobID))
}

func (r *ConversationRepository) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]messaging.Message, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+messageColumns+` FROM messages
WHERE conversation_id = $1
ORDER BY created_at, id
`, conversationID)
	if err != nil {
		return nil, errors.Wrap(err, "list messages")
	}
	return collect(rows, scanMessage)
}

func (r *ConversationRepository) GetMessage(ctx context.Context, id uuid.UUID) (messaging.Message, error) {
	return scanMessage(r.pool.QueryRow(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = $1`, id))
}

func (r *ConversationRepository) ListMessagesAfter(ctx context.Context, after messaging.Message, limit int) ([]messaging.Message, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+messageColumns+` FROM messages
WHERE conversation_id = $1 AND (created_at, id) > ($2, $3)
ORDER BY created_at, id
LIMIT $4
`, after.ConversationID, after.CreatedAt, after.ID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "list messages after checkpoint")
	}
	return collect(rows, scanMessage)
}

func (r *ConversationRepository) MarkRead(ctx context.Context, conversationID, viewerID uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
UPDATE messages SET is_read = TRUE
WHERE conversation_id = $1 AND sender_id <> $2 AND NOT is_read
`, conversationID, viewerID)
	if err != nil {
		return 0, errors.Wrap(err, "mark messages read")
	}
	return tag.RowsAffected(), nil
}

// InsertMessage also clears both deleted flags: new activity brings the
// conversation back for a participant who had deleted it.
func (r *ConversationRepository) InsertMessage(ctx context.Context, msg messaging.Message) (messaging.Message, bool, error) {
	var (
		stored  messaging.Message
		created bool
	)
	err := pgstore.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		m, err := scanMessage(tx.QueryRow(ctx, `
INSERT INTO messages (id, conversation_id, sender_id, content, client_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (conversation_id, sender_id, client_id) WHERE client_id <> '' DO NOTHING
RETURNING `+messageColumns, msg.ID, msg.ConversationID, msg.SenderID, msg.Content, msg.ClientID, msg.CreatedAt))
		if errors.Is(err, messaging.ErrMessageNotFound) {
			stored, err = scanMessage(tx.QueryRow(ctx, `
SELECT `+messageColumns+` FROM messages
WHERE conversation_id = $1 AND sender_id = $2 AND client_id = $3
`, msg.ConversationID, msg.SenderID, msg.ClientID))
			return err
		}
		if err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `
UPDATE conversations SET
	last_message = $2, last_message_at = $3, last_sender_id = $4,
	is_deleted_employer = FALSE, is_deleted_seeker = FALSE
WHERE id = $1
`, m.ConversationID, m.Content, m.CreatedAt, m.SenderID)
		if err := affectedOne(tag.RowsAffected(), err, "update last message", messaging.ErrNotFound); err != nil {
			return err
		}
		stored, created = m, true
		return nil
	})
	if err != nil {
		return messaging.Message{}, false, err
	}
	return stored, created, nil
}

func (r *ConversationRepository) ToggleFlag(ctx context.Context, conversationID uuid.UUID, side messaging.Side, flag messaging.Flag) (bool, error) {
	col, err := flagColumn(side, flag)
	if err != nil {
		return false, err
	}
	var value bool
	err = r.pool.QueryRow(ctx, fmt.Sprintf(`UPDATE conversations SET %[1]s = NOT %[1]s WHERE id = $1 RETURNING %[1]s`, col),
		conversationID).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, messaging.ErrNotFound
	}
	return value, errors.Wrap(err, "toggle flag")
}

func (r *ConversationRepository) SetFlag(ctx context.Context, conversationID uuid.UUID, side messaging.Side, flag messaging.Flag, value bool) error {
	col, err := flagColumn(side, flag)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, fmt.Sprintf(`UPDATE conversations SET %s = $2 WHERE id = $1`, col), conversationID, value)
	return affectedOne(tag.RowsAffected(), err, "set flag", messaging.ErrNotFound)
}

func (r *ConversationRepository) ListLabels(ctx context.Context, employerID uuid.UUID) ([]messaging.Label, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+labelColumns+` FROM labels l WHERE l.employer_id = $1 ORDER BY l.name`, employerID)
	if err != nil {
		return nil, errors.Wrap(err, "list labels")
	}
	return collect(rows, scanLabel)
}

func (r *ConversationRepository) GetLabel(ctx context.Context, id uuid.UUID) (messaging.Label, error) {
	return scanLabel(r.pool.QueryRow(ctx, `SELECT `+labelColumns+` FROM labels l WHERE l.id = $1`, id))
}

func (r *ConversationRepository) CreateLabel(ctx context.Context, l messaging.Label) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO labels (id, employer_id, name, color, created_at)
VALUES ($1, $2, $3, $4, $5)
`, l.ID, l.EmployerID, l.Name, l.Color, l.CreatedAt)
	if pgstore.IsUniqueViolation(err, "labels_employer_name_key") {
		return messaging.ErrLabelExists
	}
	return errors.Wrap(err, "insert label")
}

func (r *ConversationRepository) DeleteLabel(ctx context.Context, employerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM labels WHERE id = $1 AND employer_id = $2`, id, employerID)
	return affectedOne(tag.RowsAffected(), err, "delete label", messaging.ErrLabelNotFound)
}

func (r *ConversationRepository) ToggleLabel(ctx context.Context, conversationID, labelID uuid.UUID) (bool, error) {
	var attached bool
	err := pgstore.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM conversation_labels WHERE conversation_id = $1 AND label_id = $2`, conversationID, labelID)
		if err != nil {
			return errors.Wrap(err, "detach label")
		}
		if tag.RowsAffected() > 0 {
			return nil
		}
		_, err = tx.Exec(ctx, `
INSERT INTO conversation_labels (conversation_id, label_id, created_at)
VALUES ($1, $2, now())
ON CONFLICT (conversation_id, label_id) DO NOTHING
`, conversationID, labelID)
		attached = err == nil
		return errors.Wrap(err, "attach label")
	})
	return attached, err
}

func (r *ConversationRepository) ConversationLabels(ctx context.Context, conversationID uuid.UUID) ([]messaging.Label, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+labelColumns+`
FROM conversation_labels cl
JOIN labels l ON l.id = cl.label_id
WHERE cl.conversation_id = $1
ORDER BY l.name
`, conversationID)
	if err != nil {
		return nil, errors.Wrap(err, "list labels of conversation")
	}
	return collect(rows, scanLabel)
}
