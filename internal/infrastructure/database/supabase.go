package database

import (
	"fmt"

	"github.com/supabase-community/supabase-go"
)

// SupabaseClient wraps the supabase-go client.
type SupabaseClient struct {
	Client *supabase.Client
}

// NewSupabaseClient creates a client for the project at url using the anon key.
func NewSupabaseClient(url, anonKey string) (*SupabaseClient, error) {
	if url == "" {
		return nil, fmt.Errorf("supabase url is not set")
	}
	if anonKey == "" {
		return nil, fmt.Errorf("supabase anon key is not set")
	}

	client, err := supabase.NewClient(url, anonKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize supabase client: %w", err)
	}

	return &SupabaseClient{Client: client}, nil
}

// GetClient returns the underlying client.
func (sc *SupabaseClient) GetClient() *supabase.Client {
	return sc.Client
}
