package document

// Sample is the conversation the playground opens with.
const Sample = `{
  "messages": [
    {
      "author": "Alyx",
      "avatar": "green",
      "role_color": "#e67e22",
      "children": [
        {"kind": "text", "text": "Has anyone seen "},
        {"kind": "mention", "mention_type": "user", "text": "Gordon", "highlight": true},
        {"kind": "text", "text": "? 👀"},
        {"kind": "reactions", "slot": "reactions", "reactions": [
          {"name": ":eyes:", "emoji": "👀", "count": 2}
        ]}
      ]
    },
    {
      "author": "Relay",
      "avatar": "blue",
      "bot": true,
      "children": [
        {"kind": "interaction", "slot": "interactions", "interaction": {"author": "Alyx", "command": "locate"}},
        {"kind": "embed", "slot": "embeds", "embed": {
          "color": "#0099ff",
          "title": "Last seen",
          "description": "Sector C, test chamber",
          "fields": [{"title": "Status", "value": "Late", "inline": true}]
        }},
        {"kind": "buttons", "slot": "actions", "buttons": [
          {"label": "Track", "type": "primary"},
          {"label": "Map", "type": "link", "url": "https://example.com/map"}
        ]}
      ]
    }
  ]
}`
