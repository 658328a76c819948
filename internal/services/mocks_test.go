package services

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sjperalta/frequencia-api/internal/models"
	"github.com/sjperalta/frequencia-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

func mustHash(password string) *string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	s := string(h)
	return &s
}

// memColaboradorRepo keeps colaboradores in memory
type memColaboradorRepo struct {
	repository.ColaboradorRepository
	mu   sync.Mutex
	rows map[uint]*models.Colaborador
}

func newMemColaboradorRepo(cs ...models.Colaborador) *memColaboradorRepo {
	m := &memColaboradorRepo{rows: make(map[uint]*models.Colaborador)}
	for i := range cs {
		c := cs[i]
		m.rows[c.ID] = &c
	}
	return m
}

func (m *memColaboradorRepo) FindByID(ctx context.Context, id uint) (*models.Colaborador, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memColaboradorRepo) FindActiveByMatricula(ctx context.Context, matricula string) (*models.Colaborador, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.rows {
		if c.Matricula == matricula && c.Ativo {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memColaboradorRepo) List(ctx context.Context, q *repository.ColaboradorQuery) ([]models.Colaborador, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Colaborador
	for _, c := range m.rows {
		if len(q.IDs) > 0 && !containsID(q.IDs, c.ID) {
			continue
		}
		if q.OrgaoID != nil && c.OrgaoID != *q.OrgaoID {
			continue
		}
		if q.LotacaoID != nil && (c.LotacaoID == nil || *c.LotacaoID != *q.LotacaoID) {
			continue
		}
		if q.ApenasAtivos && !c.Ativo {
			continue
		}
		if q.Search != "" && !strings.Contains(strings.ToLower(c.NomeCompleto), strings.ToLower(q.Search)) {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NomeCompleto < out[j].NomeCompleto })
	return out, int64(len(out)), nil
}

func (m *memColaboradorRepo) Create(ctx context.Context, c *models.Colaborador) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.rows {
		if existing.Matricula == c.Matricula {
			return repository.ErrDuplicate
		}
	}
	c.ID = uint(len(m.rows) + 1)
	cp := *c
	m.rows[c.ID] = &cp
	return nil
}

func (m *memColaboradorRepo) Update(ctx context.Context, c *models.Colaborador) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.rows[c.ID]
	if !ok {
		return repository.ErrNotFound
	}
	cp := *c
	cp.SenhaPonto = existing.SenhaPonto
	m.rows[c.ID] = &cp
	return nil
}

func (m *memColaboradorRepo) SetAtivo(ctx context.Context, id uint, ativo bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.Ativo = ativo
	return nil
}

func (m *memColaboradorRepo) SetSenhaPonto(ctx context.Context, id uint, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.SenhaPonto = &hash
	return nil
}

func (m *memColaboradorRepo) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// memRegistroRepo keeps punches in memory. WithColaboradorLock serializes
// callers with a mutex, standing in for the row lock.
type memRegistroRepo struct {
	repository.RegistroPontoRepository
	lock       sync.Mutex
	mu         sync.Mutex
	rows       []models.RegistroPonto
	nextID     uint
	createErrs []error
	creates    int
}

func (m *memRegistroRepo) WithColaboradorLock(ctx context.Context, colaboradorID uint, fn func(tx repository.RegistroPontoRepository) error) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	return fn(m)
}

func (m *memRegistroRepo) FindByID(ctx context.Context, id uint) (*models.RegistroPonto, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.ID == id {
			cp := r
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memRegistroRepo) FindByColaboradorAndDate(ctx context.Context, colaboradorID uint, data string) ([]models.RegistroPonto, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.day(colaboradorID, data), nil
}

func (m *memRegistroRepo) day(colaboradorID uint, data string) []models.RegistroPonto {
	var out []models.RegistroPonto
	for _, r := range m.rows {
		if r.ColaboradorID == colaboradorID && r.DataRegistro == data {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TimestampRegistro.Equal(out[j].TimestampRegistro) {
			return out[i].TimestampRegistro.Before(out[j].TimestampRegistro)
		}
		return out[i].Sequencia < out[j].Sequencia
	})
	return out
}

func (m *memRegistroRepo) List(ctx context.Context, q *repository.RegistroQuery) ([]models.RegistroPonto, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.RegistroPonto
	for _, r := range m.rows {
		if q.ColaboradorID != nil && r.ColaboradorID != *q.ColaboradorID {
			continue
		}
		if q.DataInicio != "" && r.DataRegistro < q.DataInicio {
			continue
		}
		if q.DataFim != "" && r.DataRegistro > q.DataFim {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DataRegistro != out[j].DataRegistro {
			return out[i].DataRegistro > out[j].DataRegistro
		}
		return out[i].HoraRegistro > out[j].HoraRegistro
	})
	return out, int64(len(out)), nil
}

func (m *memRegistroRepo) Create(ctx context.Context, r *models.RegistroPonto) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates++
	if len(m.createErrs) > 0 {
		err := m.createErrs[0]
		m.createErrs = m.createErrs[1:]
		if err != nil {
			return err
		}
	}
	for _, existing := range m.rows {
		if existing.ColaboradorID == r.ColaboradorID && existing.DataRegistro == r.DataRegistro && existing.Sequencia == r.Sequencia {
			return repository.ErrDuplicate
		}
	}
	m.nextID++
	r.ID = m.nextID
	m.rows = append(m.rows, *r)
	return nil
}

func (m *memRegistroRepo) Update(ctx context.Context, r *models.RegistroPonto) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == r.ID {
			m.rows[i] = *r
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memRegistroRepo) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memRegistroRepo) DeleteDay(ctx context.Context, colaboradorID uint, data string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.rows[:0]
	var n int64
	for _, r := range m.rows {
		if r.ColaboradorID == colaboradorID && r.DataRegistro == data {
			n++
			continue
		}
		kept = append(kept, r)
	}
	m.rows = kept
	return n, nil
}

func (m *memRegistroRepo) Resequence(ctx context.Context, colaboradorID uint, data string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var idx []int
	for i, r := range m.rows {
		if r.ColaboradorID == colaboradorID && r.DataRegistro == data {
			idx = append(idx, i)
		}
	}
	sort.Slice(idx, func(a, b int) bool {
		ra, rb := m.rows[idx[a]], m.rows[idx[b]]
		if ra.HoraRegistro != rb.HoraRegistro {
			return ra.HoraRegistro < rb.HoraRegistro
		}
		return ra.ID < rb.ID
	})
	for seq, i := range idx {
		m.rows[i].Sequencia = seq + 1
	}
	return nil
}

func (m *memRegistroRepo) all() []models.RegistroPonto {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.RegistroPonto, len(m.rows))
	copy(out, m.rows)
	return out
}

// memAuditRepo records audit entries
type memAuditRepo struct {
	mu      sync.Mutex
	entries []models.AuditLog
}

func (m *memAuditRepo) Create(ctx context.Context, entry *models.AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry.ID = uint(len(m.entries) + 1)
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *memAuditRepo) List(ctx context.Context, q *repository.AuditQuery) ([]models.AuditLog, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.AuditLog
	for i := len(m.entries) - 1; i >= 0; i-- {
		e := m.entries[i]
		if q.ActionType != "" && e.ActionType != q.ActionType {
			continue
		}
		if q.UserEmail != "" && (e.UserEmail == nil || !strings.Contains(*e.UserEmail, q.UserEmail)) {
			continue
		}
		out = append(out, e)
	}
	total := int64(len(out))
	start := (q.Page - 1) * q.PerPage
	if start > len(out) {
		start = len(out)
	}
	end := start + q.PerPage
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

func (m *memAuditRepo) actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.ActionType
	}
	return out
}

func (m *memAuditRepo) last() models.AuditLog {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[len(m.entries)-1]
}

// memOrgaoRepo keeps orgaos in memory. Delete fails with ErrReferenced when
// referenced is set for the id.
type memOrgaoRepo struct {
	mu         sync.Mutex
	rows       map[uint]*models.Orgao
	referenced map[uint]bool
}

func newMemOrgaoRepo(orgaos ...models.Orgao) *memOrgaoRepo {
	m := &memOrgaoRepo{rows: make(map[uint]*models.Orgao), referenced: make(map[uint]bool)}
	for i := range orgaos {
		o := orgaos[i]
		m.rows[o.ID] = &o
	}
	return m
}

func (m *memOrgaoRepo) FindByID(ctx context.Context, id uint) (*models.Orgao, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *memOrgaoRepo) List(ctx context.Context) ([]models.Orgao, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Orgao
	for _, o := range m.rows {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (m *memOrgaoRepo) Create(ctx context.Context, o *models.Orgao) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o.ID = uint(len(m.rows) + 1)
	cp := *o
	m.rows[o.ID] = &cp
	return nil
}

func (m *memOrgaoRepo) Update(ctx context.Context, o *models.Orgao) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[o.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *o
	m.rows[o.ID] = &cp
	return nil
}

func (m *memOrgaoRepo) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return repository.ErrNotFound
	}
	if m.referenced[id] {
		return repository.ErrReferenced
	}
	delete(m.rows, id)
	return nil
}

// memLotacaoRepo keeps lotacoes in memory
type memLotacaoRepo struct {
	mu   sync.Mutex
	rows map[uint]*models.Lotacao
}

func newMemLotacaoRepo(ls ...models.Lotacao) *memLotacaoRepo {
	m := &memLotacaoRepo{rows: make(map[uint]*models.Lotacao)}
	for i := range ls {
		l := ls[i]
		m.rows[l.ID] = &l
	}
	return m
}

func (m *memLotacaoRepo) FindByID(ctx context.Context, id uint) (*models.Lotacao, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (m *memLotacaoRepo) List(ctx context.Context, orgaoID *uint) ([]models.Lotacao, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Lotacao
	for _, l := range m.rows {
		if orgaoID != nil && l.OrgaoID != *orgaoID {
			continue
		}
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (m *memLotacaoRepo) Create(ctx context.Context, l *models.Lotacao) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l.ID = uint(len(m.rows) + 1)
	cp := *l
	m.rows[l.ID] = &cp
	return nil
}

func (m *memLotacaoRepo) Update(ctx context.Context, l *models.Lotacao) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[l.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *l
	m.rows[l.ID] = &cp
	return nil
}

func (m *memLotacaoRepo) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

// memFrequenciaRepo keeps generated-sheet logs in memory
type memFrequenciaRepo struct {
	mu   sync.Mutex
	rows []models.FrequenciaGerada
}

func (m *memFrequenciaRepo) FindByID(ctx context.Context, id uint) (*models.FrequenciaGerada, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.rows {
		if f.ID == id {
			cp := f
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memFrequenciaRepo) List(ctx context.Context, q *repository.ListQuery) ([]models.FrequenciaGerada, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.FrequenciaGerada
	for i := len(m.rows) - 1; i >= 0; i-- {
		f := m.rows[i]
		if v := q.Filters["ano"]; v != "" && v != strconv.Itoa(f.Ano) {
			continue
		}
		out = append(out, f)
	}
	return out, int64(len(out)), nil
}

func (m *memFrequenciaRepo) Create(ctx context.Context, f *models.FrequenciaGerada) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	f.ID = uint(len(m.rows) + 1)
	m.rows = append(m.rows, *f)
	return nil
}

func (m *memFrequenciaRepo) Update(ctx context.Context, f *models.FrequenciaGerada) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == f.ID {
			m.rows[i] = *f
			return nil
		}
	}
	return repository.ErrNotFound
}

// memUserRepo keeps users and their roles in memory
type memUserRepo struct {
	mu   sync.Mutex
	rows map[uint]*models.User
	next uint
}

func newMemUserRepo(users ...models.User) *memUserRepo {
	m := &memUserRepo{rows: make(map[uint]*models.User)}
	for i := range users {
		u := users[i]
		m.rows[u.ID] = &u
		if u.ID > m.next {
			m.next = u.ID
		}
	}
	return m
}

func (m *memUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.rows {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUserRepo) Create(ctx context.Context, user *models.User, role models.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.rows {
		if strings.EqualFold(u.Email, user.Email) {
			return repository.ErrDuplicate
		}
	}
	m.next++
	user.ID = m.next
	user.Role = &models.UserRole{UserID: user.ID, Role: role}
	cp := *user
	m.rows[user.ID] = &cp
	return nil
}

func (m *memUserRepo) Update(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.rows[user.ID]
	if !ok {
		return repository.ErrNotFound
	}
	cp := *user
	cp.Role = cur.Role
	m.rows[user.ID] = &cp
	return nil
}

func (m *memUserRepo) ChangeRole(ctx context.Context, userID uint, role models.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.rows[userID]
	if !ok {
		return repository.ErrNotFound
	}
	u.Role = &models.UserRole{UserID: userID, Role: role}
	return nil
}

func (m *memUserRepo) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memUserRepo) List(ctx context.Context, q *repository.ListQuery) ([]models.User, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.User, 0, len(m.rows))
	for _, u := range m.rows {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

// memRefreshTokenRepo keeps refresh tokens in memory
type memRefreshTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]models.RefreshToken
}

func newMemRefreshTokenRepo() *memRefreshTokenRepo {
	return &memRefreshTokenRepo{tokens: make(map[string]models.RefreshToken)}
}

func (m *memRefreshTokenRepo) FindByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rt, ok := m.tokens[token]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rt, nil
}

func (m *memRefreshTokenRepo) Create(ctx context.Context, rt *models.RefreshToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[rt.Token] = *rt
	return nil
}

func (m *memRefreshTokenRepo) Delete(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, token)
	return nil
}

func (m *memRefreshTokenRepo) DeleteByUser(ctx context.Context, userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, rt := range m.tokens {
		if rt.UserID == userID {
			delete(m.tokens, k)
		}
	}
	return nil
}

func (m *memRefreshTokenRepo) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var removed int64
	for k, rt := range m.tokens {
		if rt.ExpiresAt != nil && rt.ExpiresAt.Before(before) {
			delete(m.tokens, k)
			removed++
		}
	}
	return removed, nil
}
