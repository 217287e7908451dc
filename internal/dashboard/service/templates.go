package service

import "github.com/qiniu/pulseboard/internal/dashboard/model"

var logTemplates = map[model.MonitorType][]string{
	model.TypeAPI: {
		"GET /api/v1/health 200 OK",
		"POST /api/v1/orders 201 Created",
		"GET /api/v1/users 200 OK",
		"Connection pool exhausted, waiting for available connection",
		"Rate limit exceeded for client 10.0.0.5",
		"TLS handshake completed in 12ms",
		"Request timeout after 5000ms for /api/v1/search",
		"Circuit breaker OPEN for downstream service payment-svc",
		"Retrying request to inventory-svc (attempt 2/3)",
		"Response cached for /api/v1/products, TTL 60s",
	},
	model.TypeMQ: {
		"Consumer connected to queue order.created",
		"Message published to exchange order.events",
		"Queue order.dlq has 15 messages",
		"Connection lost to broker, reconnecting...",
		"Channel closed unexpectedly: RESOURCE_LOCKED",
		"Prefetch count set to 50 for consumer tag ctag-001",
		"Message acknowledged: delivery-tag 1842",
		"Heartbeat timeout, connection reset",
		"Queue order.created declared with 2340 messages ready",
		"Consumer cancelled by broker: queue deleted",
	},
	model.TypeSearch: {
		"Index order-2026.02 created with 5 shards",
		"Search query took 850ms on index products",
		"Cluster health changed to YELLOW",
		"Shard relocation started: index users, shard 2",
		"Bulk indexing 5000 documents completed in 3.2s",
		"Query cache eviction: memory pressure at 85%",
		"Slow query detected: wildcard search on field description",
		"Snapshot backup-daily completed successfully",
		"Node es-03 joined the cluster",
		"Index merge completed for order-2026.01",
	},
	model.TypeOrder: {
		"Order ORD-999 created successfully",
		"Payment initiated for order ORD-999",
		"Stock reserved for SKU-1234 qty=2",
		"Payment callback timeout for order ORD-998",
		"Order ORD-997 status changed to COMPLETED",
		"Inventory check failed: insufficient stock for SKU-5678",
		"Refund processed for order ORD-995 amount=129.00",
		"Order ORD-996 cancelled by user",
		"Payment provider returned 504 Gateway Timeout",
		"Compensation triggered: releasing stock for ORD-994",
	},
	model.TypeDB: {
		"Connection pool size: 45/100 active",
		"Slow query detected: SELECT * FROM orders WHERE... (2.3s)",
		"Replication lag: 150ms behind primary",
		"Deadlock detected on table order_items",
		"Query plan changed for frequently executed query #42",
		"Vacuum completed on table users (12000 dead tuples removed)",
		"Connection from 10.0.1.5 established",
		"Transaction rollback: serialization failure",
		"Index scan on orders.created_at, 4200 rows examined",
		"Checkpoint completed: wrote 2048 buffers",
	},
	model.TypeCache: {
		"Cache hit ratio: 94.2% (last 5 min)",
		"Key eviction: memory usage at maxmemory limit",
		"Connected clients: 128",
		"Slow command detected: KEYS pattern (45ms)",
		"Cluster node 10.0.2.3:6379 marked as failing",
		"RDB snapshot saved to disk successfully",
		"Keyspace notification: expired key session:abc123",
		"Master-replica sync completed in 2.1s",
		"Pub/Sub message delivered to 3 subscribers on channel events",
		"Memory fragmentation ratio: 1.23",
	},
	model.TypeECS: {
		"Task arn:ecs:task/abc123 status: RUNNING",
		"Service order-processor desired count updated to 5",
		"Task stopped: exit code 137 (OOMKilled)",
		"Container health check passed on port 8080",
		"Auto-scaling triggered: CPU utilization 85%",
		"Task placement constraint evaluated: spread across AZs",
		"Deployment rollout 50% complete",
		"Service discovery registration updated",
		"Task definition revision 42 activated",
		"Container instance i-0abc123 draining",
	},
	model.TypeCrawler: {
		"Browser instance #5 launched: headless Chrome 120",
		"Page navigation completed: https://example.com/products (2.1s)",
		"Screenshot captured for page validation",
		"Browser recycled after 50 page loads",
		"Rate limit detected: 429 Too Many Requests",
		"Proxy rotated to 10.0.5.12:8080",
		"JavaScript rendering completed in 1.8s",
		"Cookie consent dialog dismissed",
		"Data extraction: 245 items scraped from listing page",
		"Memory leak detected in browser #12: 1.2GB RSS",
	},
	model.TypeSwitch: {
		"Switch state checked: ON",
		"Toggle request received from ops-admin",
		"Pre-check validation passed: inventory=15000",
		"Switch toggled ON at 14:00:00 UTC",
		"Downstream services notified of state change",
		"Rate limiter activated: 1000 req/s",
		"Switch health check passed",
		"Rollback plan verified: auto-off after 2h",
		"Monitoring alert threshold updated for flash sale",
		"Switch audit log entry created",
	},
	model.TypeChatbot: {
		"Session started: user-abc123, model=gpt-4",
		"Response generated in 1.2s, tokens=450",
		"Knowledge base query: 3 relevant documents found",
		"Fallback to human agent: confidence below threshold",
		"Session ended: satisfaction score 4.5/5",
		"Model inference batch processed: 12 requests",
		"Context window managed: truncated to 8000 tokens",
		"Intent classified: order_inquiry (confidence: 0.92)",
		"Response cached for common query: shipping policy",
		"Concurrent sessions: 156 active, 12 queued",
	},
}
