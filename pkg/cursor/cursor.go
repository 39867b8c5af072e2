package cursor

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"

	"Murmur.com/pkg/errno"
	"github.com/vmihailenco/msgpack/v5"
)

// Kind 标识游标所属的扫描类型, 跨类型重放会被拒绝
type Kind uint8

const (
	KindFollowers Kind = 1 // 粉丝列表扫描
	KindFollowees Kind = 2 // 关注列表扫描
	KindFeed      Kind = 3 // Feed聚合扫描
)

const macLen = 16

// FeedPosition Feed聚合的二级扫描位置
type FeedPosition struct {
	// OuterLastID 外层关注扫描已消费到的边ID
	OuterLastID int64 `msgpack:"o"`
	// Watermarks 当前窗口内每个作者已返回的最后一条消息ID
	Watermarks map[int64]int64 `msgpack:"w,omitempty"`
}

// Position 一次扫描的精确恢复位置
type Position struct {
	Kind   Kind          `msgpack:"k"`
	Anchor int64         `msgpack:"a"` // 扫描锚定的用户ID
	LastID int64         `msgpack:"l"` // 已返回的最后一条边ID
	Feed   *FeedPosition `msgpack:"f,omitempty"`
}

// Codec 不透明游标编解码器
// payload使用msgpack编码并附带截断的HMAC-SHA256, 令牌自包含、可水平扩展,
// 完整性校验保证调用方无法伪造扫描位置(不要求保密性)
type Codec struct {
	secret []byte
}

func NewCodec(secret []byte) *Codec {
	if len(secret) == 0 {
		// 未配置密钥时随机生成, 重启后旧游标失效, 调用方从头扫描即可
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			panic("cursor: failed to generate codec secret: " + err.Error())
		}
	}
	return &Codec{secret: secret}
}

func (c *Codec) sign(payload []byte) []byte {
	h := hmac.New(sha256.New, c.secret)
	h.Write(payload)
	return h.Sum(nil)[:macLen]
}

// Encode 将扫描位置编码为不透明令牌
func (c *Codec) Encode(pos *Position) (string, error) {
	payload, err := msgpack.Marshal(pos)
	if err != nil {
		return "", errno.ServiceErr.WithMessage("failed to encode cursor payload")
	}
	token := make([]byte, 0, len(payload)+macLen)
	token = append(token, payload...)
	token = append(token, c.sign(payload)...)
	return base64.RawURLEncoding.EncodeToString(token), nil
}

// Decode 解析并校验令牌, kind或anchor不匹配视为无效游标
func (c *Codec) Decode(token string, kind Kind, anchor int64) (*Position, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil || len(raw) <= macLen {
		return nil, errno.InvalidCursorErr
	}
	payload, mac := raw[:len(raw)-macLen], raw[len(raw)-macLen:]
	if !hmac.Equal(mac, c.sign(payload)) {
		return nil, errno.InvalidCursorErr
	}
	pos := new(Position)
	if err := msgpack.Unmarshal(payload, pos); err != nil {
		return nil, errno.InvalidCursorErr
	}
	if pos.Kind != kind || pos.Anchor != anchor {
		return nil, errno.InvalidCursorErr
	}
	return pos, nil
}
