package redcap

import "context"

// ExportUsers exports the project's users and their access rights.
func (p *Project) ExportUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := p.exportJSON(ctx, p.payload("user"), "user", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ExportUsersRaw exports the user list as csv or xml text.
func (p *Project) ExportUsersRaw(ctx context.Context, format Format) (string, error) {
	return p.exportRaw(ctx, p.payload("user"), "user", string(format))
}
