package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/invoice-analytics/pkg/config"
)

const (
	defaultMaxConns = 10
	defaultPGPort   = "5432"
	// fallbackDNS se consulta cuando el resolver del contenedor solo devuelve AAAA.
	fallbackDNS = "8.8.8.8:53"
)

var errNoIPv4 = errors.New("sin dirección IPv4")

// NewPool abre el pool del almacén analítico y comprueba la conexión.
// Importes NUMERIC se leen como decimal.Decimal en todas las conexiones.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(poolDSN(ctx, cfg))
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	applyPoolLimits(poolConfig, cfg.MaxConns)
	poolConfig.ConnConfig.DialFunc = dialIPv4
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// poolDSN elige DATABASE_URL si existe; si no, compone el DSN desde DB_*.
// El host se sustituye por su IPv4 cuando se puede resolver.
func poolDSN(ctx context.Context, cfg config.DBConfig) string {
	if cfg.DatabaseURL != "" {
		return urlWithIPv4(ctx, cfg.DatabaseURL)
	}
	if ip, err := lookupIPv4(ctx, cfg.Host); err == nil {
		cfg.Host = ip
	}
	return cfg.DSN()
}

func applyPoolLimits(pc *pgxpool.Config, maxConns int) {
	pc.MaxConns = int32(maxConns)
	if pc.MaxConns <= 0 {
		pc.MaxConns = defaultMaxConns
	}
	pc.MinConns = 1
	pc.MaxConnLifetime = time.Hour
	pc.MaxConnIdleTime = 30 * time.Minute
	pc.HealthCheckPeriod = time.Minute
}

// dialIPv4 conecta por tcp4 cuando el host tiene IPv4 y, si no, con el dial normal.
func dialIPv4(ctx context.Context, network, addr string) (net.Conn, error) {
	var d net.Dialer
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	ip, err := lookupIPv4(ctx, host)
	if err != nil {
		return d.DialContext(ctx, network, addr)
	}
	return d.DialContext(ctx, "tcp4", net.JoinHostPort(ip, port))
}

// lookupIPv4 devuelve la primera IPv4 de host. Las IP literales se devuelven
// tal cual (o errNoIPv4 si son IPv6).
func lookupIPv4(ctx context.Context, host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() == nil {
			return "", errNoIPv4
		}
		return host, nil
	}
	if ip, err := firstIPv4(ctx, net.DefaultResolver, host); err == nil {
		return ip, nil
	}
	public := &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, _, _ string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "udp", fallbackDNS)
		},
	}
	return firstIPv4(ctx, public, host)
}

func firstIPv4(ctx context.Context, r *net.Resolver, host string) (string, error) {
	ips, err := r.LookupIP(ctx, "ip4", host)
	if err != nil {
		return "", err
	}
	for _, ip := range ips {
		if v4 := ip.To4(); v4 != nil {
			return v4.String(), nil
		}
	}
	return "", errNoIPv4
}

// urlWithIPv4 reescribe el host de una URL postgres:// con su IPv4.
// Si la URL no se puede analizar o no hay IPv4 se devuelve sin cambios.
func urlWithIPv4(ctx context.Context, raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	ip, err := lookupIPv4(ctx, u.Hostname())
	if err != nil {
		return raw
	}
	port := u.Port()
	if port == "" {
		port = defaultPGPort
	}
	u.Host = net.JoinHostPort(ip, port)
	return u.String()
}
