package database

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Chaves das coleções persistidas. Cada chave guarda um array JSON completo.
const (
	KeyProducts       = "products"
	KeySales          = "sales"
	KeyExpenses       = "expenses"
	KeyDailySummaries = "daily-summaries"
)

// Store é o contrato de persistência exigido pelo núcleo: um mapeamento
// durável de chave string para um valor serializável em JSON.
type Store interface {
	// Read decodifica a coleção gravada sob a chave em out. Quando a chave
	// nunca foi gravada, out permanece no valor zero e nenhum erro é retornado.
	Read(key string, out interface{}) error

	// Write grava a coleção inteira sob a chave, substituindo o valor anterior
	Write(key string, v interface{}) error

	// Close libera os recursos do store
	Close() error
}

// BoltConfig contém as configurações do banco de dados embutido
type BoltConfig struct {
	Path    string
	Timeout time.Duration
}

// NewBoltConfigFromEnv cria uma nova configuração a partir de variáveis de ambiente
func NewBoltConfigFromEnv() *BoltConfig {
	return &BoltConfig{
		Path:    getEnv("DB_PATH", "pos-repuestos.db"),
		Timeout: 5 * time.Second,
	}
}

const recordsBucket = "records"

// BoltStore implementa Store sobre um arquivo bbolt com um único bucket
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore abre (ou cria) o arquivo do banco e garante o bucket de registros
func NewBoltStore(config *BoltConfig) (*BoltStore, error) {
	db, err := bolt.Open(config.Path, 0600, &bolt.Options{Timeout: config.Timeout})
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir banco de dados em %s: %w", config.Path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(recordsBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("erro ao criar bucket de registros: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Read implementa Store.Read
func (s *BoltStore) Read(key string, out interface{}) error {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(recordsBucket)).Get([]byte(key)); v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("erro ao ler registro %s: %w", key, err)
	}

	if raw == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("erro ao decodificar registro %s: %w", key, err)
	}

	return nil
}

// Write implementa Store.Write
func (s *BoltStore) Write(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("erro ao codificar registro %s: %w", key, err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(recordsBucket)).Put([]byte(key), raw)
	})
	if err != nil {
		return fmt.Errorf("erro ao gravar registro %s: %w", key, err)
	}

	return nil
}

// Close implementa Store.Close
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// getEnv retorna o valor de uma variável de ambiente ou um valor padrão
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
