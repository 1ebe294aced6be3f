// wechatwork/wechatwork.go
package wechatwork

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const DefaultWebhookURL = "https://qyapi.weixin.qq.com/cgi-bin/webhook/send"

// WeChatWorkMessage 企业微信Webhook消息结构
type WeChatWorkMessage struct {
	MsgType  string           `json:"msgtype"`
	Text     *TextContent     `json:"text,omitempty"`
	Markdown *MarkdownContent `json:"markdown,omitempty"`
}

type TextContent struct {
	Content             string   `json:"content"`
	MentionedList       []string `json:"mentioned_list,omitempty"`
	MentionedMobileList []string `json:"mentioned_mobile_list,omitempty"`
}

type MarkdownContent struct {
	Content string `json:"content"`
}

// NotificationSender 通知发送器, disabled without a webhook key
type NotificationSender struct {
	WebhookKey string
	WebhookURL string
	Enabled    bool
	Client     *http.Client

	// userids mentioned by failure notices, "@all" for everyone
	Mentioned []string
}

// NewNotificationSender 创建新的通知发送器
func NewNotificationSender(webhookKey string) *NotificationSender {
	return &NotificationSender{
		WebhookKey: webhookKey,
		WebhookURL: DefaultWebhookURL,
		Enabled:    webhookKey != "",
		Client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// SendText 发送文本消息
func (ns *NotificationSender) SendText(content string, mentionedList, mentionedMobileList []string) error {
	if !ns.Enabled {
		return nil
	}
	return ns.send(WeChatWorkMessage{
		MsgType: "text",
		Text: &TextContent{
			Content:             content,
			MentionedList:       mentionedList,
			MentionedMobileList: mentionedMobileList,
		},
	})
}

// SendMarkdown 发送Markdown消息
func (ns *NotificationSender) SendMarkdown(content string) error {
	if !ns.Enabled {
		return nil
	}
	return ns.send(WeChatWorkMessage{
		MsgType:  "markdown",
		Markdown: &MarkdownContent{Content: content},
	})
}

// RunReport outcome of one staging run
type RunReport struct {
	RunID    string
	Project  string
	Genome   string
	Samples  []string
	Config   string
	Err      error
	Duration time.Duration
}

// Markdown report body
func (r RunReport) Markdown() string {
	var sb strings.Builder
	if r.Err != nil {
		fmt.Fprintf(&sb, "### <font color=\"warning\">FastqMe failed</font>\n")
	} else {
		fmt.Fprintf(&sb, "### <font color=\"info\">FastqMe done</font>\n")
	}
	fmt.Fprintf(&sb, "> run: %s\n", r.RunID)
	fmt.Fprintf(&sb, "> project: %s\n", r.Project)
	if r.Genome != "" {
		fmt.Fprintf(&sb, "> genome: %s\n", r.Genome)
	}
	fmt.Fprintf(&sb, "> samples: %d\n", len(r.Samples))
	if r.Config != "" {
		fmt.Fprintf(&sb, "> config: %s\n", r.Config)
	}
	if r.Err != nil {
		fmt.Fprintf(&sb, "> error: %v\n", r.Err)
	}
	fmt.Fprintf(&sb, "> time: %s\n", r.Duration.Round(time.Second))
	return sb.String()
}

// Text plain failure notice, markdown messages can not mention users
func (r RunReport) Text() string {
	return fmt.Sprintf("FastqMe failed\nrun: %s\nproject: %s\nerror: %v", r.RunID, r.Project, r.Err)
}

// SendReport 发送运行结果, failures as text mentioning ns.Mentioned
func (ns *NotificationSender) SendReport(r RunReport) error {
	if r.Err != nil && len(ns.Mentioned) > 0 {
		return ns.SendText(r.Text(), ns.Mentioned, nil)
	}
	return ns.SendMarkdown(r.Markdown())
}

// send 发送消息
func (ns *NotificationSender) send(message WeChatWorkMessage) error {
	var base = ns.WebhookURL
	if base == "" {
		base = DefaultWebhookURL
	}
	// 构建Webhook URL
	webhookURL := fmt.Sprintf("%s?key=%s", base, ns.WebhookKey)

	jsonData, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("无法序列化通知消息: %w", err)
	}

	var client = ns.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Post(webhookURL, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("发送企业微信通知失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("企业微信通知返回非200状态码: %d", resp.StatusCode)
	}

	slog.Info("企业微信通知发送成功", "msgtype", message.MsgType)
	return nil
}
